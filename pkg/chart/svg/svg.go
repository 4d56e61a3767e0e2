// Package svg emits the chart markup: a small set of element writers shared
// by every decoration renderer. Coordinates are written with one decimal,
// enough for pixel-accurate output without bloating the document.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"
)

// EscapeXML escapes text for use in element content or attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Open writes the root element sized to the outer bounds.
func Open(w io.Writer, width, height float64) {
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
}

// Close terminates the root element.
func Close(w io.Writer) {
	io.WriteString(w, "</svg>\n")
}

// Line writes a stroked line segment.
func Line(w io.Writer, x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(w, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" />`+"\n",
		x1, y1, x2, y2, EscapeXML(stroke), width)
}

// Rect writes an unfilled rectangle, used for debug outlines.
func Rect(w io.Writer, x, y, width, height float64, stroke string) {
	fmt.Fprintf(w, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1" />`+"\n",
		x, y, width, height, EscapeXML(stroke))
}

// FilledRect writes a filled rectangle.
func FilledRect(w io.Writer, x, y, width, height float64, fill string) {
	fmt.Fprintf(w, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" />`+"\n",
		x, y, width, height, EscapeXML(fill))
}

// Text writes a monospace text element anchored at (x, y).
// anchor is an SVG text-anchor value: start, middle, or end.
func Text(w io.Writer, x, y float64, anchor string, fontSize float64, s string) {
	fmt.Fprintf(w, `  <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="middle" font-family="monospace" font-size="%.0f">%s</text>`+"\n",
		x, y, anchor, fontSize, EscapeXML(s))
}

// RotatedText writes a text element rotated by deg around its anchor point.
func RotatedText(w io.Writer, x, y, deg float64, anchor string, fontSize float64, s string) {
	fmt.Fprintf(w, `  <text x="%.1f" y="%.1f" transform="rotate(%.0f %.1f %.1f)" text-anchor="%s" dominant-baseline="middle" font-family="monospace" font-size="%.0f">%s</text>`+"\n",
		x, y, deg, x, y, anchor, fontSize, EscapeXML(s))
}

// Path writes a pre-built path with a stroke and no fill.
func Path(w io.Writer, d, stroke string, width float64) {
	if d == "" {
		return
	}
	fmt.Fprintf(w, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" />`+"\n",
		d, EscapeXML(stroke), width)
}

// PolylinePath builds a path definition connecting the given coordinate
// pairs. Non-finite points break the line: the segments on either side are
// drawn, the gap is not bridged.
func PolylinePath(xs, ys []float64) string {
	var b strings.Builder
	pen := false
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			pen = false
			continue
		}
		if pen {
			fmt.Fprintf(&b, " L %.1f %.1f", xs[i], ys[i])
		} else {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "M %.1f %.1f", xs[i], ys[i])
			pen = true
		}
	}
	return b.String()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
