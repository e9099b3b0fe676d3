package immui

// LayoutStackSize is the fixed nesting depth of the layout stack.
const LayoutStackSize = 16

// MaxLayoutColumns bounds the widths a single layout_row call may supply.
const MaxLayoutColumns = 16

const layoutMinExtent int32 = -0x1000000

const (
	layoutNextNone int8 = iota
	layoutNextRelative
	layoutNextAbsolute
)

// layoutCtx is one nesting level's row/column layout state. Field set
// grounded on other_examples/ShadyHippo-debugui's `layout` struct.
type layoutCtx struct {
	body      Rect
	position  Vec2
	size      Vec2 // size.X: default column width override; size.Y: row height
	widths    [MaxLayoutColumns]int32
	items     int
	itemIndex int
	nextRow   int32
	max       Vec2
	indent    int32

	next     Rect
	nextType int8
}

func newLayoutCtx(body Rect) layoutCtx {
	return layoutCtx{body: body, max: Vec2{X: layoutMinExtent, Y: layoutMinExtent}}
}

// PushLayout pushes a layout whose body is the container's body rect
// offset by -scroll, and seeds it with a default single-column row.
func (c *Context) PushLayout(body Rect, scroll Vec2) {
	l := newLayoutCtx(Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H})
	c.layoutStack.push(l)
	c.LayoutRow(1, nil, 0)
}

func (c *Context) popLayout() layoutCtx {
	return c.layoutStack.pop()
}

// LayoutRow starts a new row of items columns. widths, if non-nil, must
// have length <= items and is copied in as each column's width; a
// non-positive width means 0 -> the style/override default column width,
// negative -> fill the remaining row width.
func (c *Context) LayoutRow(items int, widths []int32, height int32) {
	if items > MaxLayoutColumns {
		fail(StackOverflow, "layout row requests %d columns, max is %d", items, MaxLayoutColumns)
	}
	l := c.layoutStack.topPtr()
	if widths != nil {
		copy(l.widths[:items], widths)
	}
	l.items = items
	l.itemIndex = 0
	l.position = Vec2{X: l.indent, Y: l.nextRow}
	l.size.Y = height
}

// LayoutWidth overrides the default column width used when a row's
// column width is 0, for subsequent rows in the current layout.
func (c *Context) LayoutWidth(w int32) {
	c.layoutStack.topPtr().size.X = w
}

// LayoutHeight overrides the default row height.
func (c *Context) LayoutHeight(h int32) {
	c.layoutStack.topPtr().size.Y = h
}

// LayoutSetNext overrides the rect the next LayoutNext call returns.
// When relative is true, rect is offset by the current layout body's
// origin; when false, rect is used verbatim (absolute screen space).
func (c *Context) LayoutSetNext(rect Rect, relative bool) {
	l := c.layoutStack.topPtr()
	l.next = rect
	if relative {
		l.nextType = layoutNextRelative
	} else {
		l.nextType = layoutNextAbsolute
	}
}

// LayoutNext computes and returns the next widget's rectangle, advancing
// the row cursor, implicitly starting a new row when the current one is
// full, and updating the layout's running content-size extent.
func (c *Context) LayoutNext() Rect {
	l := c.layoutStack.topPtr()

	var res Rect
	if l.nextType != layoutNextNone {
		res = l.next
		if l.nextType == layoutNextRelative {
			res.X += l.body.X
			res.Y += l.body.Y
		}
		l.nextType = layoutNextNone
	} else {
		if l.itemIndex == l.items {
			widths := append([]int32(nil), l.widths[:l.items]...)
			c.LayoutRow(l.items, widths, l.size.Y)
			l = c.layoutStack.topPtr()
		}

		w := l.widths[l.itemIndex]
		switch {
		case w == 0:
			if l.size.X != 0 {
				w = l.size.X
			} else {
				w = c.style.Size.X
			}
		case w < 0:
			w = w + l.body.W - l.position.X + 1
		}
		h := l.size.Y
		if h == 0 {
			h = c.style.Size.Y
		}

		res = Rect{X: l.position.X, Y: l.position.Y, W: w, H: h}

		l.position.X += w + c.style.Spacing
		if next := l.position.Y + h + c.style.Spacing; next > l.nextRow {
			l.nextRow = next
		}
		l.itemIndex++

		res.X += l.body.X
		res.Y += l.body.Y
	}

	if far := res.X + res.W; far > l.max.X {
		l.max.X = far
	}
	if far := res.Y + res.H; far > l.max.Y {
		l.max.Y = far
	}

	c.lastRect = res
	return res
}

// LayoutBeginColumn pushes a sub-layout sized to the next rect, so
// subsequent widget calls lay out vertically within that column.
func (c *Context) LayoutBeginColumn() {
	r := c.LayoutNext()
	c.layoutStack.push(newLayoutCtx(r))
}

// LayoutEndColumn pops the column's layout and merges its cursor and
// content extent back into the parent, translated by the difference
// between the two layouts' body origins.
func (c *Context) LayoutEndColumn() {
	child := c.popLayout()
	parent := c.layoutStack.topPtr()

	dx := child.body.X - parent.body.X
	dy := child.body.Y - parent.body.Y

	if x := child.position.X + dx; x > parent.position.X {
		parent.position.X = x
	}
	if y := child.nextRow + dy; y > parent.nextRow {
		parent.nextRow = y
	}
	if x := child.max.X + dx; x > parent.max.X {
		parent.max.X = x
	}
	if y := child.max.Y + dy; y > parent.max.Y {
		parent.max.Y = y
	}
}
