package immui

// unclippedRect is the sentinel "no clipping in effect" rectangle pushed
// beneath the clip stack's first real entry: 16M × 16M.
var unclippedRect = Rect{X: -0x800000, Y: -0x800000, W: 0x1000000, H: 0x1000000}

// ClipResult classifies a rectangle against the current clip rect.
type ClipResult int

const (
	// ClipNone: rect lies entirely inside the current clip.
	ClipNone ClipResult = iota
	// ClipPart: rect straddles the clip boundary.
	ClipPart
	// ClipAll: rect lies entirely outside the current clip (fully culled).
	ClipAll
)

// PushClipRect pushes the intersection of rect with the current clip
// rect (or the unclipped sentinel if the stack is empty).
func (c *Context) PushClipRect(rect Rect) {
	current := c.clipStack.topOr(unclippedRect)
	c.clipStack.push(Intersect(rect, current))
}

// PopClipRect removes the top of the clip stack.
func (c *Context) PopClipRect() {
	c.clipStack.pop()
}

// GetClipRect returns the top of the clip stack, or the unclipped
// sentinel if the stack is empty.
func (c *Context) GetClipRect() Rect {
	return c.clipStack.topOr(unclippedRect)
}

// CheckClip classifies rect against the current clip rect.
func (c *Context) CheckClip(rect Rect) ClipResult {
	cr := c.GetClipRect()
	inter := Intersect(rect, cr)
	if inter.Area() <= 0 {
		return ClipAll
	}
	if rect.X >= cr.X && rect.Y >= cr.Y && rect.Max().X <= cr.Max().X && rect.Max().Y <= cr.Max().Y {
		return ClipNone
	}
	return ClipPart
}
