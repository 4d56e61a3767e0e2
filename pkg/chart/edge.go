package chart

// Edge identifies one of the four chart boundary sides.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Horizontal reports whether the edge runs along the top or bottom.
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}
