package immui

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// ptrToBytes views a pointer's own bits as an id seed. Grounded on
// other_examples/Zyko0-microui-ebitengine/helpers.go: widgets that are
// bound to a Go value (Checkbox, Slider, Number) derive their identity
// from the bound pointer rather than from a label, so two controls with
// the same label but different backing variables never collide.
func ptrToBytes(ptr unsafe.Pointer) []byte {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&ptr)), unsafe.Sizeof(ptr))
	heap := make([]byte, len(raw))
	copy(heap, raw)
	return heap
}

// Text draws str word-wrapped to the current layout's column width,
// breaking only at spaces and explicit newlines.
//
// Grounded on other_examples/Zyko0-microui-ebitengine/controls.go's Text.
func (c *Context) Text(str string) {
	color := c.style.Colors[ColorText]
	c.LayoutBeginColumn()
	c.LayoutRow(1, []int32{-1}, c.textHeight(0))

	var p, lineEnd int
	for lineEnd < len(str) {
		rect := c.LayoutNext()
		w := int32(0)
		lineEnd = p
		lineStart := lineEnd
		for lineEnd < len(str) && str[lineEnd] != '\n' {
			word := p
			for p < len(str) && str[p] != ' ' && str[p] != '\n' {
				p++
			}
			w += c.textWidth(0, str[word:p])
			if w > rect.W && lineEnd != lineStart {
				break
			}
			if p < len(str) {
				w += c.textWidth(0, string(str[p]))
			}
			lineEnd = p
			p++
		}
		c.DrawText(0, str[lineStart:lineEnd], -1, Vec2{X: rect.X, Y: rect.Y}, color)
		p = lineEnd + 1
	}
	c.LayoutEndColumn()
}

// Label draws str as a single non-interactive line in the current
// layout cell.
func (c *Context) Label(str string) {
	rect := c.LayoutNext()
	c.drawControlText(0, str, rect, ColorText, 0)
}

// Button draws a clickable control and reports ResultSubmit the frame
// it is clicked. icon, if not IconNone, is drawn scaled to the button's
// rect; a non-empty label is drawn over that same rect.
func (c *Context) Button(label string, icon IconId, opt Option) Result {
	var id Id
	if len(label) > 0 {
		id = c.GetIDStr(label)
	} else {
		id = c.GetID([]byte{byte(icon)})
	}
	rect := c.LayoutNext()
	res := c.updateControl(id, rect, opt)

	if c.mousePressed&MouseLeft != 0 && c.focusId == id {
		res |= ResultSubmit
	}

	c.drawControlFrame(id, rect, ColorButton, opt)
	if icon != IconNone {
		c.DrawIcon(icon, rect, c.style.Colors[ColorText])
	}
	if len(label) > 0 {
		c.drawControlText(0, label, rect, ColorText, opt)
	}
	return res
}

// Checkbox draws a checkable box bound to state, toggling it and
// reporting ResultChange when clicked.
func (c *Context) Checkbox(label string, state *bool) Result {
	id := c.GetID(ptrToBytes(unsafe.Pointer(state)))
	rect := c.LayoutNext()
	var res Result

	box := Rect{X: rect.X, Y: rect.Y, W: rect.H, H: rect.H}
	res = c.updateControl(id, rect, 0)
	if c.mousePressed&MouseLeft != 0 && c.focusId == id {
		res |= ResultChange
		*state = !*state
	}

	c.drawControlFrame(id, box, ColorBase, 0)
	if *state {
		c.DrawIcon(IconCheck, box, c.style.Colors[ColorText])
	}
	labelRect := Rect{X: rect.X + box.W, Y: rect.Y, W: rect.W - box.W, H: rect.H}
	c.drawControlText(0, label, labelRect, ColorText, 0)
	return res
}

// Textbox binds buf to a single-line editable field: printable text
// typed this frame is appended, Backspace removes the last grapheme
// cluster, and Enter submits and blurs. There is no movable cursor:
// edits always happen at the end of the string, and Delete and the arrow
// keys are ignored. opt|OptHoldFocus is implicit — an editing textbox
// keeps focus even while the mouse isn't over it.
//
// Grounded on other_examples/Zyko0-microui-ebitengine/controls.go's
// textBoxRaw, generalized from a byte cursor to a grapheme-cluster-aware
// one via github.com/clipperhouse/uax29/v2/graphemes so Backspace never
// splits a multi-byte cluster.
func (c *Context) Textbox(buf *string, opt Option) Result {
	id := c.GetID(ptrToBytes(unsafe.Pointer(buf)))
	return c.textboxRaw(buf, id, opt)
}

func (c *Context) textboxRaw(buf *string, id Id, opt Option) Result {
	rect := c.LayoutNext()
	var res Result
	res = c.updateControl(id, rect, opt|OptHoldFocus)

	if c.focusId == id {
		if text := c.inputText; len(text) > 0 {
			*buf += text
			res |= ResultChange
		}
		if c.keyPressed&KeyBackspace != 0 && len(*buf) > 0 {
			*buf = (*buf)[:lastGraphemeBoundary(*buf)]
			res |= ResultChange
		}
		if c.keyPressed&KeyReturn != 0 {
			c.SetFocus(0)
			res |= ResultSubmit
		}
	}

	c.drawControlFrame(id, rect, ColorBase, opt)
	if c.focusId == id {
		color := c.style.Colors[ColorText]
		tw := c.textWidth(0, *buf)
		th := c.textHeight(0)
		ofx := rect.W - c.style.Padding - tw - 1
		textX := rect.X + minI32(ofx, c.style.Padding)
		textY := rect.Y + (rect.H-th)/2
		c.PushClipRect(rect)
		c.DrawText(0, *buf, -1, Vec2{X: textX, Y: textY}, color)
		c.DrawRect(Rect{X: textX + tw, Y: textY, W: 1, H: th}, color)
		c.PopClipRect()
	} else {
		c.drawControlText(0, *buf, rect, ColorText, opt)
	}
	return res
}

// lastGraphemeBoundary returns the byte offset one grapheme cluster
// before the end of s, the index Backspace truncates to.
func lastGraphemeBoundary(s string) int {
	seg := graphemes.FromString(s)
	last := 0
	offset := 0
	for seg.Next() {
		last = offset
		offset += len(seg.Value())
	}
	return last
}

const numberFormat = "%.3f"

// numberTextBox switches value into direct-entry mode when the widget
// is Shift-clicked, routing keystrokes through textboxRaw against a
// scratch string buffer until Enter or focus loss commits the parsed
// float back into *value. Returns true while in this mode (the caller's
// normal drag/frame logic is skipped that frame).
func (c *Context) numberTextBox(value *float64, id Id) bool {
	if c.mousePressed&MouseLeft != 0 && c.keyDown&KeyShift != 0 && c.hoverId == id {
		c.numberEditId = id
		c.numberEditBuf = fmt.Sprintf(numberFormat, *value)
	}
	if c.numberEditId == id {
		res := c.textboxRaw(&c.numberEditBuf, id, 0)
		if res.Submit() || c.focusId != id {
			parsed, err := strconv.ParseFloat(c.numberEditBuf, 64)
			if err != nil {
				parsed = 0
			}
			*value = parsed
			c.numberEditId = 0
		}
		return true
	}
	return false
}

// Slider binds value to a draggable range control, clamped to
// [low, high] and optionally quantized to step. Shift-click switches it
// to direct numeric entry (see numberTextBox).
func (c *Context) Slider(value *float64, low, high, step float64, format string, opt Option) Result {
	if format == "" {
		format = numberFormat
	}
	last := *value
	v := last
	id := c.GetID(ptrToBytes(unsafe.Pointer(value)))

	if c.numberTextBox(&v, id) {
		*value = v
		return 0
	}

	rect := c.LayoutNext()
	var res Result
	res = c.updateControl(id, rect, opt)

	if c.focusId == id && (c.mouseDown|c.mousePressed)&MouseLeft != 0 {
		v = low + float64(c.mousePos.X-rect.X)*(high-low)/float64(rect.W)
		if step != 0 {
			v = roundTo(v, step)
		}
	}
	v = clampF64(v, low, high)
	*value = v
	if last != v {
		res |= ResultChange
	}

	c.drawControlFrame(id, rect, ColorBase, opt)
	w := c.style.ThumbSize
	x := int32((v - low) * float64(rect.W-w) / (high - low))
	thumb := Rect{X: rect.X + x, Y: rect.Y, W: w, H: rect.H}
	c.drawControlFrame(id, thumb, ColorButton, opt)
	c.drawControlText(0, fmt.Sprintf(format, v), rect, ColorText, opt)
	return res
}

// Number binds value to a drag-scrub control: holding the mouse down
// over it and moving horizontally adds delta*step to the value each
// frame. Shift-click switches it to direct numeric entry.
func (c *Context) Number(value *float64, step float64, format string, opt Option) Result {
	if format == "" {
		format = numberFormat
	}
	id := c.GetID(ptrToBytes(unsafe.Pointer(value)))
	last := *value

	if c.numberTextBox(value, id) {
		return 0
	}

	rect := c.LayoutNext()
	var res Result
	res = c.updateControl(id, rect, opt)

	if c.focusId == id && c.mouseDown == MouseLeft {
		*value += float64(c.mouseDelta.X) * step
	}
	if *value != last {
		res |= ResultChange
	}

	c.drawControlFrame(id, rect, ColorBase, opt)
	c.drawControlText(0, fmt.Sprintf(format, *value), rect, ColorText, opt)
	return res
}

func roundTo(v, step float64) float64 {
	q := v / step
	if q >= 0 {
		return float64(int64(q+0.5)) * step
	}
	return float64(int64(q-0.5)) * step
}

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
