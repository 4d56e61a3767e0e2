package cli

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// playgroundCommand creates the playground command: an interactive TUI that
// drives a live sine/cosine chart through the reactive engine.
func (c *CLI) playgroundCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Explore the chart engine interactively",
		Long: `Playground runs an animated sine/cosine chart in the terminal.

The chart re-renders on every change: the wave advances over time, the
point count and cursor respond to key presses, and the current frame can
be written to an SVG file at any moment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPlaygroundModel(output)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "playground.svg", "file written by the save key")

	return cmd
}

// wavePoint is one record of the demo data set.
type wavePoint struct {
	X      float64
	Sine   float64
	Cosine float64
}

// playgroundModel is the bubbletea model wrapping a live chart.
type playgroundModel struct {
	output string

	data   *reactive.Value[[]wavePoint]
	use    *chart.UseChart[ticks.Float, ticks.Float]
	points int
	phase  float64
	cursor float64 // cursor X as a fraction of the inner width
	paused bool
	saved  string
	err    error
}

type frameMsg time.Time

func newPlaygroundModel(output string) *playgroundModel {
	m := &playgroundModel{
		output: output,
		points: 200,
		cursor: 0.5,
	}

	s := series.New[wavePoint, ticks.Float, ticks.Float](
		func(p wavePoint) ticks.Float { return ticks.Float(p.X) },
	)
	s.AddLine(series.Line[wavePoint, ticks.Float]{Name: "sine", GetY: func(p wavePoint) ticks.Float { return ticks.Float(p.Sine) }})
	s.AddLine(series.Line[wavePoint, ticks.Float]{Name: "cosine", GetY: func(p wavePoint) ticks.Float { return ticks.Float(p.Cosine) }})
	s.SetYRange(-1, 1)

	cfg := chart.Chart[wavePoint, ticks.Float, ticks.Float]{
		AspectRatio: chart.OuterSize(800, 600),
		Top: []chart.EdgeLayout[ticks.Float]{
			chart.RotatedLabel[ticks.Float]{Text: "Playground", Anchor: chart.AnchorMiddle},
		},
		Bottom: []chart.EdgeLayout[ticks.Float]{chart.TickLabels[ticks.Float]{Gen: ticks.Floats{}}},
		Left:   []chart.EdgeLayout[ticks.Float]{chart.TickLabels[ticks.Float]{Gen: ticks.Floats{}}},
		Right:  []chart.EdgeLayout[ticks.Float]{chart.Legend[ticks.Float]{Anchor: chart.AnchorStart}},
		Inner: []chart.InnerLayout[ticks.Float, ticks.Float]{
			chart.AxisMarker[ticks.Float, ticks.Float]{Placement: chart.MarkerHorizontalZero},
			chart.XGuideLine[ticks.Float, ticks.Float]{},
		},
	}

	m.data = reactive.NewValue(wave(m.points, 0))
	m.use = cfg.Build(s, m.data)
	m.syncCursor()
	return m
}

// wave samples one sine and cosine period over [0, 2π) with a phase offset.
func wave(n int, phase float64) []wavePoint {
	points := make([]wavePoint, n)
	for i := range points {
		x := float64(i) / float64(n) * 2 * math.Pi
		points[i] = wavePoint{X: x, Sine: math.Sin(x + phase), Cosine: math.Cos(x + phase)}
	}
	return points
}

// syncCursor maps the fractional cursor position into SVG space.
func (m *playgroundModel) syncCursor() {
	inner := m.use.InnerBounds.Get()
	m.use.Cursor.Set(&geom.Point{
		X: inner.Left + m.cursor*inner.Width(),
		Y: inner.CenterY(),
	})
}

func (m *playgroundModel) Init() tea.Cmd {
	return m.tick()
}

func (m *playgroundModel) tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.paused {
			m.phase += 0.1
			m.data.Set(wave(m.points, m.phase))
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "up", "k":
			m.points = min(m.points*2, 6400)
			m.data.Set(wave(m.points, m.phase))
		case "down", "j":
			m.points = max(m.points/2, 25)
			m.data.Set(wave(m.points, m.phase))
		case "left", "h":
			m.cursor = math.Max(0, m.cursor-0.05)
			m.syncCursor()
		case "right", "l":
			m.cursor = math.Min(1, m.cursor+0.05)
			m.syncCursor()
		case "s":
			m.saved = ""
			m.err = os.WriteFile(m.output, m.use.SVG(), 0o644)
			if m.err == nil {
				m.saved = m.output
			}
		}
	}
	return m, nil
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chartkit Playground"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ points  ←/→ cursor  space pause  s save  q quit"))
	b.WriteString("\n\n")

	svg := m.use.SVG()
	inner := m.use.InnerBounds.Get()
	outer := m.use.OuterBounds.Get()

	rows := []struct{ key, value string }{
		{"phase", m.use.Phase().String()},
		{"points", fmt.Sprintf("%d", m.points)},
		{"outer", fmt.Sprintf("%.0f × %.0f", outer.Width(), outer.Height())},
		{"plot area", fmt.Sprintf("%.0f × %.0f", inner.Width(), inner.Height())},
		{"nearest x", fmt.Sprintf("%.3f", m.use.NearestX())},
		{"svg bytes", fmt.Sprintf("%d", len(svg))},
	}
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-10s", row.key)))
		b.WriteString(StyleValue.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString("  " + StyleWarning.Render(fmt.Sprintf("save failed: %v", m.err)))
		b.WriteString("\n")
	} else if m.saved != "" {
		b.WriteString("  " + StyleSuccess.Render("saved "+m.saved))
		b.WriteString("\n")
	}
	if m.paused {
		b.WriteString("  " + StyleHighlight.Render("paused"))
		b.WriteString("\n")
	}

	return b.String()
}
