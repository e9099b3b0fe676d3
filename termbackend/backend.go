// Package termbackend is the reference rendering backend: it drains an
// immui.Context's per-frame command stream into an internal/termbuf
// cell grid, diffs it against the previous frame, and writes the
// resulting ANSI runs to an io.Writer.
//
// A backend is explicitly out of scope for the core — rasterization
// is left to the application — so everything here is built on immui's
// public Context/Iterator/Font surface the same way an application
// would use it; nothing in package immui imports this package.
package termbackend

import (
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/germtb/immui"
	"github.com/germtb/immui/internal/termbuf"
)

// Backend paints one immui.Context's command stream per frame into a
// terminal. Text width is measured with go-runewidth (germtb-goli's own
// text-measurement dependency, germtb-goli/render.go), so layout counts
// two columns for a wide CJK/emoji rune; painting still advances one
// cell per rune.
type Backend struct {
	out    io.Writer
	front  *termbuf.CellBuffer
	back   *termbuf.CellBuffer
	width  int
	height int
}

// NewBackend constructs a Backend sized width x height and wires its
// text-metrics/draw-frame callbacks onto ctx. The caller must still call
// ctx.BeginFrame/EndFrame and issue widget calls; Render drains the
// resulting command stream.
func NewBackend(ctx *immui.Context, out io.Writer, width, height int) *Backend {
	b := &Backend{
		out:    out,
		front:  termbuf.NewCellBuffer(width, height),
		back:   termbuf.NewCellBuffer(width, height),
		width:  width,
		height: height,
	}
	ctx.SetTextMetrics(b.textWidth, b.textHeight)
	return b
}

// Resize reallocates both cell buffers blank at the new size. The next
// Render then rewrites every cell that is not blank in the new frame;
// cells that are blank in it are not rewritten.
func (b *Backend) Resize(width, height int) {
	b.width, b.height = width, height
	b.front = termbuf.NewCellBuffer(width, height)
	b.back = termbuf.NewCellBuffer(width, height)
}

func (b *Backend) textWidth(_ immui.Font, s string) int32 {
	return int32(runewidth.StringWidth(s))
}

func (b *Backend) textHeight(_ immui.Font) int32 {
	return 1
}

// toStyle converts an immui.Color to the cell style this backend paints
// with. immui colors are always RGB (there is no named palette), so
// every cell gets an explicit foreground/background.
func toStyle(fg immui.Color, hasBG bool, bg immui.Color) termbuf.Style {
	s := termbuf.Style{
		FG:    termbuf.RGB{R: fg.R, G: fg.G, B: fg.B},
		HasFG: fg.A != 0,
	}
	if hasBG {
		s.BG = termbuf.RGB{R: bg.R, G: bg.G, B: bg.B}
		s.HasBG = bg.A != 0
	}
	return s
}

// Render walks ctx's realized command stream (z-ordered, clip-bracketed
// by Clip commands), paints it into the back buffer, diffs it against
// what's currently on screen, and writes only the changed runs.
func (b *Backend) Render(ctx *immui.Context) error {
	b.back.Clear()

	it := ctx.Commands()
	var clip immui.Rect
	hasClip := false

	for {
		typ, ptr, ok := it.Next()
		if !ok {
			break
		}
		switch typ {
		case immui.CmdClip:
			c := it.ReadClip(ptr)
			clip = c.Rect
			hasClip = clip != unclippedSentinel
		case immui.CmdRect:
			r := it.ReadRect(ptr)
			b.paintRect(r.Rect, clip, hasClip, toStyle(r.Color, true, r.Color))
		case immui.CmdText:
			text, str := it.ReadText(ptr)
			b.paintText(text.Pos, str, clip, hasClip, toStyle(text.Color, false, immui.Color{}))
		case immui.CmdIcon:
			icon := it.ReadIcon(ptr)
			b.paintIcon(icon.Rect, icon.Icon, clip, hasClip, toStyle(icon.Color, false, immui.Color{}))
		}
	}

	changes := termbuf.DiffBuffers(b.front, b.back)
	if len(changes) > 0 {
		runs := termbuf.FindRuns(changes)
		if _, err := io.WriteString(b.out, termbuf.RunsToAnsi(runs)); err != nil {
			return err
		}
	}
	b.front, b.back = b.back, b.front
	return nil
}

var unclippedSentinel = immui.Rect{X: -0x800000, Y: -0x800000, W: 0x1000000, H: 0x1000000}

func (b *Backend) paintRect(r, clip immui.Rect, hasClip bool, style termbuf.Style) {
	if hasClip {
		r = immui.Intersect(r, clip)
	}
	b.back.FillRect(int(r.X), int(r.Y), int(r.W), int(r.H), ' ', style)
}

// paintText writes str starting at pos, skipping any rune whose column
// falls outside clip (DrawText's caller only bracketed the command with
// a Clip pair when CheckClip reported ClipPart, so a straddling string
// still needs per-rune trimming here).
func (b *Backend) paintText(pos immui.Vec2, str string, clip immui.Rect, hasClip bool, style termbuf.Style) {
	y := int(pos.Y)
	if hasClip && (y < int(clip.Y) || y >= int(clip.Y+clip.H)) {
		return
	}
	col := int(pos.X)
	for _, r := range str {
		if !hasClip || (int32(col) >= clip.X && int32(col) < clip.X+clip.W) {
			b.back.Set(col, y, termbuf.Cell{Char: r, Style: style})
		}
		col++
	}
}

func (b *Backend) paintIcon(r immui.Rect, icon immui.IconId, clip immui.Rect, hasClip bool, style termbuf.Style) {
	if hasClip {
		r = immui.Intersect(r, clip)
	}
	ch := iconGlyph(icon)
	if r.Area() <= 0 {
		return
	}
	b.back.Set(int(r.X), int(r.Y), termbuf.Cell{Char: ch, Style: style})
}

func iconGlyph(icon immui.IconId) rune {
	switch icon {
	case immui.IconClose:
		return 'x'
	case immui.IconCheck:
		return 'v'
	case immui.IconCollapsed:
		return '>'
	case immui.IconExpanded:
		return 'v'
	default:
		return ' '
	}
}
