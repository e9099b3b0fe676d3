package immui

// Input setters are how an application feeds a frame's events into a
// Context; a backend (cmd/demo) owns decoding raw terminal escape
// sequences into these calls, so the core never imports a terminal
// library.

// InputMouseMove records the pointer's current cell position.
func (c *Context) InputMouseMove(pos Vec2) { c.mousePos = pos }

// InputMouseDown marks button as held.
func (c *Context) InputMouseDown(button MouseButton) { c.mouseDown |= button }

// InputMouseUp marks button as released.
func (c *Context) InputMouseUp(button MouseButton) { c.mouseDown &^= button }

// InputScroll accumulates wheel delta for this frame.
func (c *Context) InputScroll(delta Vec2) {
	c.scrollDelta.X += delta.X
	c.scrollDelta.Y += delta.Y
}

// InputKeyDown marks key as held.
func (c *Context) InputKeyDown(key Key) { c.keyDown |= key }

// InputKeyUp marks key as released.
func (c *Context) InputKeyUp(key Key) { c.keyDown &^= key }

// InputText appends decoded printable text (already UTF-8, already
// stripped of control sequences) to this frame's text-input buffer,
// consumed by Textbox and reset at EndFrame.
func (c *Context) InputText(s string) { c.inputText += s }

// MouseDown, MousePressed, KeyDown and KeyPressed let widgets read raw
// input state directly for gestures update_control doesn't cover (drag
// scrubbing on Number, for instance).
func (c *Context) MouseDown(button MouseButton) bool    { return c.mouseDown&button != 0 }
func (c *Context) MousePressed(button MouseButton) bool { return c.mousePressed&button != 0 }
func (c *Context) KeyDown(key Key) bool                 { return c.keyDown&key != 0 }
func (c *Context) KeyPressed(key Key) bool              { return c.keyPressed&key != 0 }

// MousePos and MouseDelta expose the pointer's cell coordinates and its
// motion since last frame (the deltas a slider or scrollbar drag needs).
func (c *Context) MousePos() Vec2    { return c.mousePos }
func (c *Context) MouseDelta() Vec2 { return c.mouseDelta }
func (c *Context) ScrollDelta() Vec2 { return c.scrollDelta }

// PendingText returns the text typed so far this frame, not yet consumed
// by a widget.
func (c *Context) PendingText() string { return c.inputText }

// mouseOver reports whether the pointer is inside rect, the pointer is
// inside the current clip rect, and — when the mouse is currently over a root
// container — that root is the hovered one (so a widget behind an
// overlapping window is never hit-tested as hovered).
//
// Grounded on other_examples/Zyko0-microui-ebitengine/controls.go's
// mouseOver, which adds exactly these three conditions.
func (c *Context) mouseOver(rect Rect) bool {
	if !rect.Contains(c.mousePos) {
		return false
	}
	if !c.GetClipRect().Contains(c.mousePos) {
		return false
	}
	return c.inHoverRoot()
}

// inHoverRoot reports whether the innermost root container enclosing the
// current widget call is this frame's hovered root — walking down the
// container stack from the top until it finds the nearest entry that is
// itself a root (a plain panel pushes onto this same stack but is never
// one).
func (c *Context) inHoverRoot() bool {
	items := c.containerStack.items()
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == c.hoverRoot {
			return true
		}
		if items[i].IsRoot {
			break
		}
	}
	return false
}

// updateControl runs the standard hover/focus/active transition for one
// interactive widget's id and rect, and returns the single-frame result
// bitmask the caller ORs its own submit/change bits into.
//
// opt&OptHoldFocus keeps a widget focused across frames it isn't
// hovered (a textbox mid-edit); without it, focus is only retained
// while a mouse button stays held (a plain button).
//
// Transition table grounded on other_examples/Zyko0-microui-ebitengine
// and other_examples/ShadyHippo-debugui's mu_update_control /
// updateControl.
func (c *Context) updateControl(id Id, rect Rect, opt Option) Result {
	var res Result
	if id == 0 {
		return res
	}

	over := c.mouseOver(rect)

	if c.focusId == id {
		c.keepFocus = true
	}
	if opt.has(OptNoInteract) {
		return res
	}

	if over && c.mouseDown == 0 {
		c.hoverId = id
	}

	if c.focusId == id {
		if c.mousePressed != 0 && !over {
			c.SetFocus(0)
		}
		if c.mouseDown == 0 && !opt.has(OptHoldFocus) {
			c.SetFocus(0)
		}
	}

	if c.hoverId == id {
		if c.mousePressed != 0 {
			c.SetFocus(id)
		} else if !over {
			c.hoverId = 0
		}
	}

	if c.focusId == id {
		res |= ResultActive
	}
	return res
}
