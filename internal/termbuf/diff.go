package termbuf

import "sort"

// CellChange is a single (x, y) position whose cell differs between two
// buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// CellRun is a horizontal run of consecutive changed cells, the unit
// ansi.go emits as one cursor-move-then-write burst.
type CellRun struct {
	X, Y  int
	Cells []Cell
}

// DiffBuffers returns every CellChange needed to turn from into to.
// Dimension mismatches are handled by diffing the overlapping region and
// treating any extra rows/columns in to as wholesale changes.
//
// Adapted from germtb-goli's DiffBuffers (diff.go), trimmed
// to the single-shot (non "Into"-variant) form — a frame's diff is
// computed once per render, not accumulated across many small updates.
func DiffBuffers(from, to *CellBuffer) []CellChange {
	width := minInt(from.Width(), to.Width())
	height := minInt(from.Height(), to.Height())

	estimated := (to.Width() * to.Height()) / 5
	if estimated < 64 {
		estimated = 64
	}
	changes := make([]CellChange, 0, estimated)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if fc, tc := from.Get(x, y), to.Get(x, y); !fc.Equal(tc) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: tc})
			}
		}
	}
	for y := height; y < to.Height(); y++ {
		for x := 0; x < to.Width(); x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: to.Get(x, y)})
		}
	}
	for y := 0; y < height; y++ {
		for x := width; x < to.Width(); x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: to.Get(x, y)})
		}
	}
	return changes
}

// FindRuns groups changes into per-row runs of consecutive x positions,
// so the encoder can emit one cursor move per run instead of per cell.
func FindRuns(changes []CellChange) []CellRun {
	if len(changes) == 0 {
		return nil
	}

	byRow := make(map[int][]CellChange)
	for _, ch := range changes {
		byRow[ch.Y] = append(byRow[ch.Y], ch)
	}
	rows := make([]int, 0, len(byRow))
	for y := range byRow {
		rows = append(rows, y)
	}
	sort.Ints(rows)

	runs := make([]CellRun, 0, len(changes)/4+1)
	for _, y := range rows {
		rowChanges := byRow[y]
		sort.Slice(rowChanges, func(i, j int) bool { return rowChanges[i].X < rowChanges[j].X })

		var current *CellRun
		for _, ch := range rowChanges {
			if current != nil && ch.X == current.X+len(current.Cells) {
				current.Cells = append(current.Cells, ch.Cell)
				continue
			}
			if current != nil {
				runs = append(runs, *current)
			}
			current = &CellRun{X: ch.X, Y: y, Cells: []Cell{ch.Cell}}
		}
		if current != nil {
			runs = append(runs, *current)
		}
	}
	return runs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
