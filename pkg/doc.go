// Package pkg provides the core libraries for Chartkit chart rendering.
//
// # Overview
//
// Chartkit turns a chart description and an ordered data table into an SVG
// document through a pull-based reactive engine. The pkg directory is
// organized into five main areas:
//
//  1. [reactive] - Versioned cells and memos driving incremental recomputation
//  2. [chart] - Layout composition, tick generation, series projection, SVG output
//  3. [pipeline] - Orchestration (load → build → render) used by CLI and API
//  4. [cache] - Render cache backends (file, Redis, null) and content-hash keys
//  5. [errors] - Structured error codes shared by CLI and API
//
// # Architecture
//
// The typical data flow through Chartkit:
//
//	TOML config + CSV table
//	         ↓
//	    [pipeline] package (parse config, parse data)
//	         ↓
//	    [chart/series] package (extract marks, reconcile ranges)
//	         ↓
//	    [chart] package (compose layout, project data, draw decorations)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Build and render a chart directly against the engine:
//
//	import (
//	    "github.com/matzehuels/chartkit/pkg/chart"
//	    "github.com/matzehuels/chartkit/pkg/chart/series"
//	    "github.com/matzehuels/chartkit/pkg/chart/ticks"
//	    "github.com/matzehuels/chartkit/pkg/reactive"
//	)
//
//	type point struct{ X, Y float64 }
//
//	s := series.New[point, ticks.Float, ticks.Float](
//	    func(p point) ticks.Float { return ticks.Float(p.X) },
//	)
//	s.AddLine(series.Line[point, ticks.Float]{
//	    Name: "value",
//	    GetY: func(p point) ticks.Float { return ticks.Float(p.Y) },
//	})
//
//	cfg := chart.Chart[point, ticks.Float, ticks.Float]{
//	    AspectRatio: chart.OuterSize(800, 600),
//	    Bottom:      []chart.EdgeLayout[ticks.Float]{chart.TickLabels[ticks.Float]{Gen: ticks.Floats{}}},
//	    Left:        []chart.EdgeLayout[ticks.Float]{chart.TickLabels[ticks.Float]{Gen: ticks.Floats{}}},
//	}
//	data := reactive.NewValue([]point{{0, 1}, {1, 3}, {2, 2}})
//	use := cfg.Build(s, data)
//	svg := use.SVG()
//
// Updating the data cell invalidates exactly the memos that depend on it;
// the next SVG call recomputes only what changed.
//
// # Main Packages
//
// [reactive] - Single-threaded versioned cells (Value) and derived memos
// (Memo) with explicit dependency declaration. The whole chart state graph
// is built from these.
//
// [chart] - The chart type and its layout engine: aspect policies, edge
// decorations (tick labels, rotated labels, legends), plot-area decorations
// (axis markers, grid lines, guide lines, inset legends), and the monospace
// text model used to size them without a font renderer.
//
// [chart/geom] - Bounds, sizes, padding, and the data-to-SVG projection.
//
// [chart/ticks] - Tick generation for float and timestamp scales with
// span-aware density selection.
//
// [chart/series] - Declarative series descriptions resolved against a data
// cell: per-mark value arrays, reconciled ranges, nearest-point queries.
//
// [chart/svg] - Minimal SVG element emission shared by all renderers.
//
// [pipeline] - Complete rendering pipeline (load → build → render) used by
// CLI and API. Ensures consistent behavior across all entry points, with
// content-hash render caching.
//
// [cache] - Render cache with file, Redis, and null backends plus key
// derivation from config and data hashes.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/chart/...        # Specific package
//	go test -run Example           # Examples only
//
// [reactive]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/reactive
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart
// [chart/geom]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/geom
// [chart/ticks]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/ticks
// [chart/series]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/series
// [chart/svg]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/svg
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/buildinfo
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
package pkg
