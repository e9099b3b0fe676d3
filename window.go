package immui

// BeginWindow opens (or resumes) the named root container as a movable,
// resizable, titled frame at rect (used only the first time the window
// is seen — afterwards its persisted Rect wins). It returns false if the
// window is closed or doesn't exist yet (opt includes OptClosed and it
// has never been opened); callers must not call EndWindow in that case.
//
// Grounded on other_examples/Zyko0-microui-ebitengine/controls.go's
// window()/pushContainerBody(), restructured from its callback style
// into an explicit begin/end pair.
func (c *Context) BeginWindow(title string, rect Rect, opt Option) bool {
	id := c.GetIDStr(title)
	cnt := c.GetContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return false
	}
	c.PushID([]byte(title))

	if cnt.Rect.W == 0 {
		cnt.Rect = rect
	}

	if c.mousePressed != 0 && cnt.Rect.Contains(c.mousePos) && c.hoverRoot == cnt {
		c.BringToFront(cnt)
	}

	c.beginRootContainer(cnt)
	body := cnt.Rect

	if !opt.has(OptNoFrame) {
		c.drawFrame(body, ColorWindowBG)
	}

	if !opt.has(OptNoTitle) {
		tr := Rect{X: body.X, Y: body.Y, W: body.W, H: c.style.TitleHeight}
		c.drawFrame(tr, ColorTitleBG)

		titleId := c.GetIDStr("!title")
		c.updateControl(titleId, tr, opt|OptHoldFocus)
		c.drawControlText(0, title, tr, ColorTitleText, opt)
		if titleId == c.focusId && c.mouseDown == MouseLeft {
			cnt.Rect.X += c.mouseDelta.X
			cnt.Rect.Y += c.mouseDelta.Y
		}
		body.Y += tr.H
		body.H -= tr.H

		if !opt.has(OptNoClose) {
			closeId := c.GetIDStr("!close")
			r := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			c.DrawIcon(IconClose, r, c.style.Colors[ColorTitleText])
			c.updateControl(closeId, r, opt)
			if c.mousePressed&MouseLeft != 0 && closeId == c.focusId {
				cnt.Open = false
			}
		}
	}

	c.pushContainerBody(cnt, body, opt)

	if !opt.has(OptNoResize) {
		sz := c.style.TitleHeight
		resizeId := c.GetIDStr("!resize")
		r := Rect{X: cnt.Rect.X + cnt.Rect.W - sz, Y: cnt.Rect.Y + cnt.Rect.H - sz, W: sz, H: sz}
		c.updateControl(resizeId, r, opt)
		if resizeId == c.focusId && c.mouseDown == MouseLeft {
			cnt.Rect.W = maxI32(96, cnt.Rect.W+c.mouseDelta.X)
			cnt.Rect.H = maxI32(64, cnt.Rect.H+c.mouseDelta.Y)
		}
	}

	if opt.has(OptAutoSize) {
		r := c.layoutStack.top().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - r.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - r.H)
	}

	if opt.has(OptPopup) && c.mousePressed != 0 && c.hoverRoot != cnt {
		cnt.Open = false
	}

	c.PushClipRect(cnt.Body)
	return true
}

// EndWindow closes the clip/layout/id/container brackets BeginWindow
// opened. Must be called exactly once for every BeginWindow that
// returned true.
func (c *Context) EndWindow() {
	c.PopClipRect()
	c.popLayout()
	c.endRootContainer()
	c.PopID()
}

// pushContainerBody lays out cnt's scrollbars (unless OptNoScroll) and
// pushes the resulting inset body as a new layout, scrolled by cnt's
// persisted Scroll.
func (c *Context) pushContainerBody(cnt *Container, body Rect, opt Option) {
	if !opt.has(OptNoScroll) {
		body = c.scrollbars(cnt, body)
	}
	c.PushLayout(body.Expand(-c.style.Padding), cnt.Scroll)
	cnt.Body = body
}

func (c *Context) scrollbars(cnt *Container, body Rect) Rect {
	sz := c.style.ScrollbarSize
	cs := Vec2{X: cnt.ContentSize.X + c.style.Padding*2, Y: cnt.ContentSize.Y + c.style.Padding*2}

	c.PushClipRect(body)
	if cs.Y > cnt.Body.H {
		body.W -= sz
	}
	if cs.X > cnt.Body.W {
		body.H -= sz
	}
	c.scrollbarVertical(cnt, body, cs)
	c.scrollbarHorizontal(cnt, body, cs)
	c.PopClipRect()
	return body
}

func (c *Context) scrollbarVertical(cnt *Container, body Rect, cs Vec2) {
	maxscroll := cs.Y - body.H
	if maxscroll <= 0 || body.H <= 0 {
		cnt.Scroll.Y = 0
		return
	}

	id := c.GetIDStr("!scrollbar-y")
	base := Rect{X: body.X + body.W, Y: body.Y, W: c.style.ScrollbarSize, H: body.H}

	c.updateControl(id, base, 0)
	if id == c.focusId && c.mouseDown == MouseLeft {
		cnt.Scroll.Y += c.mouseDelta.Y * cs.Y / base.H
	}
	cnt.Scroll.Y = clampI32(cnt.Scroll.Y, 0, maxscroll)

	c.drawFrame(base, ColorScrollBase)
	thumbH := maxI32(c.style.ThumbSize, base.H*body.H/cs.Y)
	thumb := Rect{X: base.X, Y: base.Y + cnt.Scroll.Y*(base.H-thumbH)/maxscroll, W: base.W, H: thumbH}
	c.drawFrame(thumb, ColorScrollThumb)

	if c.mouseOver(body) {
		c.scrollTarget = cnt
	}
}

func (c *Context) scrollbarHorizontal(cnt *Container, body Rect, cs Vec2) {
	maxscroll := cs.X - body.W
	if maxscroll <= 0 || body.W <= 0 {
		cnt.Scroll.X = 0
		return
	}

	id := c.GetIDStr("!scrollbar-x")
	base := Rect{X: body.X, Y: body.Y + body.H, W: body.W, H: c.style.ScrollbarSize}

	c.updateControl(id, base, 0)
	if id == c.focusId && c.mouseDown == MouseLeft {
		cnt.Scroll.X += c.mouseDelta.X * cs.X / base.W
	}
	cnt.Scroll.X = clampI32(cnt.Scroll.X, 0, maxscroll)

	c.drawFrame(base, ColorScrollBase)
	thumbW := maxI32(c.style.ThumbSize, base.W*body.W/cs.X)
	thumb := Rect{X: base.X + cnt.Scroll.X*(base.W-thumbW)/maxscroll, Y: base.Y, W: thumbW, H: base.H}
	c.drawFrame(thumb, ColorScrollThumb)

	if c.mouseOver(body) {
		c.scrollTarget = cnt
	}
}

// BeginPanel opens a non-root container sharing its enclosing root's
// command range and z-order: identical visually to a window minus
// title/close/resize, used to subdivide a window's body. Always returns
// normally (a panel has no Closed state); callers always pair it with
// EndPanel.
func (c *Context) BeginPanel(name string, opt Option) {
	c.PushID([]byte(name))
	id := c.lastID
	cnt := c.GetContainer(id, opt)
	cnt.Rect = c.LayoutNext()

	if !opt.has(OptNoFrame) {
		c.drawFrame(cnt.Rect, ColorPanelBG)
	}

	c.containerStack.push(cnt)
	c.pushContainerBody(cnt, cnt.Rect, opt)
	c.PushClipRect(cnt.Body)
}

// EndPanel closes the clip/layout/container/id brackets BeginPanel
// opened.
func (c *Context) EndPanel() {
	c.PopClipRect()
	c.popLayout()
	c.containerStack.pop()
	c.PopID()
}

// OpenPopup positions name's container at the current mouse position,
// marks it open, brings it to front, and marks it this frame's hover
// root so the very BeginWindow call that opens it doesn't immediately
// close it again as a click-outside.
func (c *Context) OpenPopup(name string) {
	cnt := c.GetContainer(c.GetIDStr(name), 0)
	c.nextHoverRoot = cnt
	c.hoverRoot = cnt
	cnt.Rect = Rect{X: c.mousePos.X, Y: c.mousePos.Y, W: 1, H: 1}
	cnt.Open = true
	c.BringToFront(cnt)
}

// popupOptions is the fixed option set every popup container carries.
const popupOptions = OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed

// BeginPopup opens name's popup container if it has been opened by
// OpenPopup and is still marked Open, returning false otherwise —
// the discipline that makes a popup's default state closed.
func (c *Context) BeginPopup(name string) bool {
	return c.BeginWindow(name, Rect{}, popupOptions)
}

// EndPopup mirrors EndWindow; call it only after BeginPopup returns true.
func (c *Context) EndPopup() {
	c.EndWindow()
}
