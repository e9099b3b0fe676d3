package termbuf

// CellBuffer is a fixed-size 2D grid of cells, the diffing unit a
// terminal backend renders a completed immui frame into.
//
// Adapted from germtb-goli's CellBuffer (buffer.go); the
// LogicalBuffer/VisualRows half of that file is dropped — immui already
// resolves every widget to an absolute screen rect, so there's no
// logical-row wrapping to do at render time.
type CellBuffer struct {
	width, height int
	cells         []Cell
}

// NewCellBuffer returns a width x height buffer filled with EmptyCell.
func NewCellBuffer(width, height int) *CellBuffer {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &CellBuffer{width: width, height: height, cells: cells}
}

func (b *CellBuffer) index(x, y int) int { return y*b.width + x }

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Width returns the buffer's column count.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer's row count.
func (b *CellBuffer) Height() int { return b.height }

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[b.index(x, y)]
}

// Set writes c at (x, y). Out-of-bounds writes are silently clipped.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// FillRect sets every cell within rect (clipped to the buffer) to char/style.
func (b *CellBuffer) FillRect(x, y, w, h int, char rune, style Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, Cell{Char: char, Style: style})
		}
	}
}

// WriteString writes text left-to-right starting at (x, y), clipping at
// the buffer's right edge. Returns the number of runes written.
func (b *CellBuffer) WriteString(x, y int, text string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}
	written := 0
	col := x
	for _, ch := range text {
		if col < 0 {
			col++
			continue
		}
		if col >= b.width {
			break
		}
		b.Set(col, y, Cell{Char: ch, Style: style})
		written++
		col++
	}
	return written
}

// Clear resets every cell to EmptyCell.
func (b *CellBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
}
