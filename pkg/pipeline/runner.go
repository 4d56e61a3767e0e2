package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx)
	configTOML, dataCSV, err := r.load(opts)
	observability.Pipeline().OnLoadComplete(ctx, len(configTOML), len(dataCSV), time.Since(loadStart), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.ConfigHash = cache.Hash(configTOML)
	result.DataHash = cache.Hash(dataCSV)
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded inputs",
		"config_bytes", len(configTOML),
		"data_bytes", len(dataCSV),
		"duration", result.Stats.LoadTime)

	// The SVG is a pure function of config, data, and render options, so
	// one key covers the whole remaining pipeline.
	cacheKey := r.Keyer.RenderKey(result.ConfigHash, result.DataHash, opts.renderKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			cfg, err := ParseConfig(configTOML)
			if err != nil {
				return nil, err
			}
			result.Config = cfg
			result.SVG = data
			result.CacheInfo.RenderHit = true
			result.Stats.MarkCount = len(cfg.Series)
			r.Logger.Info("render cache hit", "key", cacheKey)
			return result, nil
		}
	}

	observability.Cache().OnCacheMiss(ctx, "render")

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx)
	cfg, err := ParseConfig(configTOML)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, 0, 0, time.Since(buildStart), err)
		return nil, err
	}
	tbl, err := ParseData(dataCSV)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, 0, 0, time.Since(buildStart), err)
		return nil, err
	}
	result.Config = cfg
	result.Stats.RowCount = len(tbl.Rows)
	result.Stats.MarkCount = len(cfg.Series)
	result.Stats.BuildTime = time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, result.Stats.RowCount, result.Stats.MarkCount, result.Stats.BuildTime, nil)

	r.Logger.Info("built chart",
		"rows", result.Stats.RowCount,
		"marks", result.Stats.MarkCount,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, result.Stats.RowCount, result.Stats.MarkCount)
	svg, err := Render(cfg, tbl, opts)
	observability.Pipeline().OnRenderComplete(ctx, len(svg), time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.SVG = svg
	result.Stats.RenderTime = time.Since(renderStart)

	if err := r.Cache.Set(ctx, cacheKey, svg, cache.TTLRender); err == nil {
		observability.Cache().OnCacheSet(ctx, "render", len(svg))
	}

	r.Logger.Info("rendered chart",
		"svg_bytes", len(svg),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// load materializes the config and data bytes. Inline bytes win over paths.
func (r *Runner) load(opts Options) ([]byte, []byte, error) {
	configTOML := opts.ConfigTOML
	if len(configTOML) == 0 {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", opts.ConfigPath)
		}
		configTOML = data
	}

	dataCSV := opts.DataCSV
	if len(dataCSV) == 0 {
		data, err := os.ReadFile(opts.DataPath)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read data %s", opts.DataPath)
		}
		dataCSV = data
	}

	return configTOML, dataCSV, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
