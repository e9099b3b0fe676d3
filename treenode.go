package immui

// Header draws a collapsible header line (no child indent block) and
// reports ResultActive while it is expanded. Persistent open/closed
// state is kept in the treenode pool, keyed by label's id; opt&OptExpanded
// inverts the stored state's starting meaning, so a header can default
// to expanded on first use.
//
// Grounded on other_examples/Zyko0-microui-ebitengine/controls.go's
// header()/HeaderEx(), generalized to also back BeginTreeNode.
func (c *Context) Header(label string, opt Option) Result {
	return c.header(label, false, opt)
}

func (c *Context) header(label string, asTreeNode bool, opt Option) Result {
	id := c.GetIDStr(label)
	idx := poolGet(c.treeNodePool[:], id)
	c.LayoutRow(1, []int32{-1}, 0)

	active := idx >= 0
	expanded := active
	if opt.has(OptExpanded) {
		expanded = !active
	}

	rect := c.LayoutNext()
	c.updateControl(id, rect, 0)

	clicked := c.mousePressed&MouseLeft != 0 && c.focusId == id
	if clicked {
		active = !active
	}

	switch {
	case idx >= 0 && active:
		poolUpdate(c.treeNodePool[:], idx, c.frame)
	case idx >= 0:
		c.treeNodePool[idx] = poolItem{}
	case active:
		poolInit(c.treeNodePool[:], id, c.frame)
	}

	if asTreeNode {
		if c.hoverId == id {
			c.drawFrame(rect, ColorButtonHover)
		}
	} else {
		c.drawControlFrame(id, rect, ColorButton, 0)
	}

	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	c.DrawIcon(icon, Rect{X: rect.X, Y: rect.Y, W: rect.H, H: rect.H}, c.style.Colors[ColorText])
	textRect := Rect{X: rect.X + rect.H - c.style.Padding, Y: rect.Y, W: rect.W - (rect.H - c.style.Padding), H: rect.H}
	c.drawControlText(0, label, textRect, ColorText, 0)

	if expanded {
		return ResultActive
	}
	return 0
}

// BeginTreeNode opens label's indented block if it is expanded,
// returning false otherwise (the caller must skip the block and not
// call EndTreeNode). Grounded on the same corpus's treeNode().
func (c *Context) BeginTreeNode(label string, opt Option) bool {
	res := c.header(label, true, opt)
	if !res.Active() {
		return false
	}
	c.layoutStack.topPtr().indent += c.style.Indent
	c.idStack.push(c.lastID)
	return true
}

// EndTreeNode closes the indent and id pushed by a BeginTreeNode that
// returned true.
func (c *Context) EndTreeNode() {
	c.layoutStack.topPtr().indent -= c.style.Indent
	c.PopID()
}
