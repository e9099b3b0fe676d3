// Package termbuf provides a packed terminal cell grid and a diff-based
// ANSI encoder, the rasterization target the reference backend
// (package termbackend) paints immui command streams into.
//
// Adapted from germtb-goli's cell.go/buffer.go: the same
// "Cell is a character plus a Style" shape, trimmed to what a backend
// consuming absolute-positioned Rect/Text/Icon commands needs — no
// logical/wrapping buffer, since immui already resolves every widget to
// an absolute screen rect.
package termbuf

// Style holds the rendered appearance of one terminal cell.
type Style struct {
	FG, BG     RGB
	HasFG, HasBG bool
	Bold       bool
	Inverse    bool
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Equal reports whether two styles render identically.
func (s Style) Equal(o Style) bool {
	return s.HasFG == o.HasFG && s.HasBG == o.HasBG && s.Bold == o.Bold &&
		s.Inverse == o.Inverse && (!s.HasFG || s.FG == o.FG) && (!s.HasBG || s.BG == o.BG)
}

// Cell is a single terminal "pixel": a character and its style.
type Cell struct {
	Char  rune
	Style Style
}

// EmptyCell is a blank, unstyled cell.
var EmptyCell = Cell{Char: ' '}

// Equal reports whether two cells are identical.
func (c Cell) Equal(o Cell) bool {
	return c.Char == o.Char && c.Style.Equal(o.Style)
}
