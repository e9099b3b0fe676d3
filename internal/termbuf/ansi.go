package termbuf

import (
	"strconv"
	"strings"
)

const resetSeq = "\x1b[0m"
const boldSeq = "\x1b[1m"
const inverseSeq = "\x1b[7m"

// moveCursor returns the CSI sequence to move the cursor to 0-based
// (x, y), converted to the 1-based coordinates terminals expect.
//
// Adapted from germtb-goli's MoveCursor (ansi.go).
func moveCursor(x, y int) string {
	return "\x1b[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}

func styleToAnsi(s Style, sb *strings.Builder) {
	if s.Bold {
		sb.WriteString(boldSeq)
	}
	if s.Inverse {
		sb.WriteString(inverseSeq)
	}
	if s.HasFG {
		sb.WriteString(rgbSeq(s.FG, true))
	}
	if s.HasBG {
		sb.WriteString(rgbSeq(s.BG, false))
	}
}

func rgbSeq(c RGB, fg bool) string {
	var sb strings.Builder
	sb.WriteString("\x1b[")
	if fg {
		sb.WriteString("38;2;")
	} else {
		sb.WriteString("48;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
	return sb.String()
}

// RunToAnsi appends run's cells to sb as a cursor move followed by a
// styled character stream, re-emitting the style escape only when it
// changes from the previous cell (the common case: most of a run shares
// one widget's colors).
func RunToAnsi(run CellRun, sb *strings.Builder) {
	sb.WriteString(moveCursor(run.X, run.Y))

	var current *Style
	for _, c := range run.Cells {
		if current == nil || !current.Equal(c.Style) {
			sb.WriteString(resetSeq)
			styleToAnsi(c.Style, sb)
			styleCopy := c.Style
			current = &styleCopy
		}
		sb.WriteRune(c.Char)
	}
}

// RunsToAnsi renders every run to one ANSI string terminated by a reset,
// the payload a backend writes to stdout once per frame.
func RunsToAnsi(runs []CellRun) string {
	if len(runs) == 0 {
		return resetSeq
	}
	total := 0
	for _, r := range runs {
		total += len(r.Cells)
	}
	var sb strings.Builder
	sb.Grow(total*20 + len(runs)*15)
	for _, r := range runs {
		RunToAnsi(r, &sb)
	}
	sb.WriteString(resetSeq)
	return sb.String()
}
