package immui

// Drawing primitives append Rect/Text/Icon commands to the frame's
// command buffer. Rect commands are intersected with the current clip
// rect before they are written. Text and Icon commands follow the
// clip-bracket protocol: a fully-clipped emission is skipped, a partial
// one is bracketed by a Clip-to-current-rect / Clip-to-unclipped pair so
// the backend never has to re-derive what was visible when the command
// was issued.

// DrawRect intersects rect with the current clip and, if any area
// survives, emits a Rect command for the intersection.
func (c *Context) DrawRect(rect Rect, color Color) {
	rect = Intersect(rect, c.GetClipRect())
	if rect.Area() <= 0 {
		return
	}
	writeCmd(&c.commands, CmdRect, RectCmd{Rect: rect, Color: color})
}

// DrawBox draws a 1-pixel-thick unfilled border around rect: four edge
// rects, with the left/right edges owning the corners.
func (c *Context) DrawBox(rect Rect, color Color) {
	c.DrawRect(Rect{X: rect.X + 1, Y: rect.Y, W: rect.W - 2, H: 1}, color)
	c.DrawRect(Rect{X: rect.X + 1, Y: rect.Y + rect.H - 1, W: rect.W - 2, H: 1}, color)
	c.DrawRect(Rect{X: rect.X, Y: rect.Y, W: 1, H: rect.H}, color)
	c.DrawRect(Rect{X: rect.X + rect.W - 1, Y: rect.Y, W: 1, H: rect.H}, color)
}

// DrawText measures str with the context's text_width callback and
// emits a Text command at pos, clip-bracketed per the protocol above. A
// negative length uses the full string; a non-negative one truncates by
// rune count first.
func (c *Context) DrawText(font Font, str string, length int, pos Vec2, color Color) {
	if length >= 0 {
		r := []rune(str)
		if length < len(r) {
			str = string(r[:length])
		}
	}
	w := c.textWidth(font, str)
	h := c.textHeight(font)
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	c.emitClipped(rect, func() {
		idx := c.commands.StoreString(str)
		writeCmd(&c.commands, CmdText, TextCmd{
			Font: font, Pos: pos, Color: color,
			StrIdx: idx, StrLen: uint32(len([]rune(str))),
		})
	})
}

// DrawIcon emits an Icon command scaled to rect, same clip protocol as
// DrawText.
func (c *Context) DrawIcon(icon IconId, rect Rect, color Color) {
	c.emitClipped(rect, func() {
		writeCmd(&c.commands, CmdIcon, IconCmd{Rect: rect, Icon: icon, Color: color})
	})
}

func (c *Context) emitClipped(rect Rect, emit func()) {
	switch c.CheckClip(rect) {
	case ClipAll:
		return
	case ClipPart:
		clip := c.GetClipRect()
		writeCmd(&c.commands, CmdClip, ClipCmd{Rect: clip})
		emit()
		writeCmd(&c.commands, CmdClip, ClipCmd{Rect: unclippedRect})
	default:
		emit()
	}
}

// textWidth and textHeight call the configured metrics callbacks,
// falling back to a fixed-width estimate (one cell per rune) so a
// Context used without SetTextMetrics (unit tests, headless buffer
// inspection) still produces sane layout.
func (c *Context) textWidth(font Font, str string) int32 {
	if c.textWidthFn != nil {
		return c.textWidthFn(font, str)
	}
	return int32(len([]rune(str)))
}

func (c *Context) textHeight(font Font) int32 {
	if c.textHeightFn != nil {
		return c.textHeightFn(font)
	}
	return 1
}

// SetTextMetrics installs the font-measurement callbacks every drawn
// string and every text-based widget's layout depends on. The rendering
// backend (package termbackend) is the usual caller.
func (c *Context) SetTextMetrics(width func(Font, string) int32, height func(Font) int32) {
	c.textWidthFn = width
	c.textHeightFn = height
}

// SetDrawFrame overrides the strategy BeginWindow/Panel/widgets use to
// paint a control's background, letting an application theme controls
// (rounded corners, 3D bevels, ...) without forking the widget logic.
// The default fills colorId and, for every color except the title bar
// and scrollbar colors, adds a 1px ColorBorder outline.
func (c *Context) SetDrawFrame(fn func(c *Context, rect Rect, colorId ColorId)) {
	c.drawFrameFn = fn
}

func (c *Context) drawFrame(rect Rect, colorId ColorId) {
	if c.drawFrameFn != nil {
		c.drawFrameFn(c, rect, colorId)
		return
	}
	defaultDrawFrame(c, rect, colorId)
}

// defaultDrawFrame is grounded on the reference backend's draw_frame:
// fill, then outline base/button/panel-ish colors in ColorBorder.
func defaultDrawFrame(c *Context, rect Rect, colorId ColorId) {
	c.DrawRect(rect, c.style.Colors[colorId])
	switch colorId {
	case ColorScrollBase, ColorScrollThumb, ColorTitleBG:
		return
	}
	if c.style.Colors[ColorBorder].A != 0 {
		c.DrawBox(rect.Expand(1), c.style.Colors[ColorBorder])
	}
}

// drawControlFrame draws a widget's background, shifting to the
// hover/focus color variant for the colorId+1/colorId+2 convention
// (Button/ButtonHover/ButtonFocus, Base/BaseHover/BaseFocus) unless
// OptNoFrame suppresses drawing entirely.
func (c *Context) drawControlFrame(id Id, rect Rect, colorId ColorId, opt Option) {
	if opt.has(OptNoFrame) {
		return
	}
	if c.focusId == id {
		colorId += 2
	} else if c.hoverId == id {
		colorId++
	}
	c.drawFrame(rect, colorId)
}

// drawControlText draws str inside rect, clipped to it, honoring
// OptAlignCenter/OptAlignRight (default left), vertically centered.
func (c *Context) drawControlText(font Font, str string, rect Rect, colorId ColorId, opt Option) {
	tw := c.textWidth(font, str)
	th := c.textHeight(font)
	c.PushClipRect(rect)

	var pos Vec2
	pos.Y = rect.Y + (rect.H-th)/2
	switch {
	case opt.has(OptAlignCenter):
		pos.X = rect.X + (rect.W-tw)/2
	case opt.has(OptAlignRight):
		pos.X = rect.X + rect.W - tw - c.style.Padding
	default:
		pos.X = rect.X + c.style.Padding
	}
	c.DrawText(font, str, -1, pos, c.style.Colors[colorId])
	c.PopClipRect()
}
