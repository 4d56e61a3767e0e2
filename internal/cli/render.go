package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	data      string  // CSV data file path
	output    string  // output SVG path, derived from config when empty
	width     float64 // outer width override in pixels
	height    float64 // outer height override in pixels
	debug     bool    // draw layout region outlines
	noCache   bool    // disable the render cache
	refresh   bool    // bypass the cache and overwrite the entry
	redisAddr string  // Redis address, file cache when empty
}

// renderCommand creates the render command: TOML config plus CSV data in,
// SVG out.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <config.toml>",
		Short: "Render a chart config and data table to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "CSV data file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: config name with .svg)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "outer width in pixels (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "outer height in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "outline layout regions in the output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the render cache (default: file cache)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, configPath string, opts *renderOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		ConfigPath: configPath,
		DataPath:   opts.data,
		Width:      opts.width,
		Height:     opts.height,
		Debug:      opts.debug,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if opts.output == "-" {
		if _, err := os.Stdout.Write(result.SVG); err != nil {
			return err
		}
		return nil
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(configPath, filepath.Ext(configPath)) + ".svg"
	}
	if err := os.WriteFile(outputPath, result.SVG, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	title := result.Config.Title
	if title == "" {
		title = filepath.Base(configPath)
	}
	printSuccess("Rendered %s", title)
	printFile(outputPath)
	printStats(result.Stats.RowCount, result.Stats.MarkCount, result.CacheInfo.RenderHit)
	return nil
}
