// Package pipeline provides the chart rendering pipeline for Chartkit.
//
// This package implements the complete load → build → render pipeline shared
// by the CLI and the HTTP service. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the TOML chart config and the CSV data table
//  2. Build: Assemble the reactive chart from config and records
//  3. Render: Produce the SVG document
//
// Rendering is a pure function of config, data, and render options, so the
// final SVG is cached keyed by their hashes.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ConfigPath: "chart.toml",
//	    DataPath:   "data.csv",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.SVG
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/errors"
)

const (
	// DefaultWidth is the default outer width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default outer height in pixels.
	DefaultHeight = 600.0
)

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Raw bytes take precedence over paths; the HTTP service
	// fills the bytes directly, the CLI fills the paths.
	ConfigPath string `json:"config_path,omitempty"`
	DataPath   string `json:"data_path,omitempty"`
	ConfigTOML []byte `json:"config_toml,omitempty"`
	DataCSV    []byte `json:"data_csv,omitempty"`

	// Render options. Zero width/height fall back to the config's aspect
	// section, then to the package defaults.
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Debug   bool    `json:"debug,omitempty"`
	Refresh bool    `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Config is the parsed chart description.
	Config *Config

	// ConfigHash and DataHash are the content hashes used for caching.
	ConfigHash string
	DataHash   string

	// SVG is the rendered document.
	SVG []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the render came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount   int
	MarkCount  int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether the SVG came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.ConfigTOML) == 0 && o.ConfigPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "config is required")
	}
	if len(o.DataCSV) == 0 && o.DataPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "data is required")
	}
	if o.ConfigPath != "" {
		if err := errors.ValidatePath(o.ConfigPath); err != nil {
			return err
		}
	}
	if o.DataPath != "" {
		if err := errors.ValidatePath(o.DataPath); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// renderKeyOpts returns the cache key options for this run.
func (o *Options) renderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Width:  o.Width,
		Height: o.Height,
		Debug:  o.Debug,
	}
}
