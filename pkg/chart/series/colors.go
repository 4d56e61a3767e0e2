package series

// Scheme assigns colors to marks by id. Colors cycle when there are more
// marks than palette entries.
type Scheme struct {
	colors []string
}

// NewScheme creates a scheme from CSS color strings. An empty palette falls
// back to the default scheme.
func NewScheme(colors ...string) Scheme {
	if len(colors) == 0 {
		return DefaultScheme()
	}
	return Scheme{colors: colors}
}

// DefaultScheme is a ten-color palette chosen for contrast on a white
// plot background.
func DefaultScheme() Scheme {
	return Scheme{colors: []string{
		"#1f77b4", // blue
		"#ff7f0e", // orange
		"#2ca02c", // green
		"#d62728", // red
		"#9467bd", // purple
		"#8c564b", // brown
		"#e377c2", // pink
		"#7f7f7f", // gray
		"#bcbd22", // olive
		"#17becf", // cyan
	}}
}

// ByIndex returns the color for the given mark id.
func (s Scheme) ByIndex(i int) string {
	if len(s.colors) == 0 {
		s = DefaultScheme()
	}
	return s.colors[i%len(s.colors)]
}

// Len returns the palette size.
func (s Scheme) Len() int { return len(s.colors) }
