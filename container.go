package immui

// ContainerPoolSize is the fixed number of container slots retained
// across frames.
const ContainerPoolSize = 48

// TreeNodePoolSize is the fixed number of treenode open/closed slots.
const TreeNodePoolSize = 48

// Container is the persistent per-window/panel/popup record. Rect,
// Body, ContentSize, Scroll, ZIndex and Open persist across frames;
// Head and Tail are per-frame scratch bracketing this container's
// commands in the current frame's buffer.
//
// Field set and headIdx/tailIdx/zIndex/open naming grounded on
// other_examples/ShadyHippo-debugui's `container` struct.
type Container struct {
	id          Id
	Rect        Rect
	Body        Rect
	ContentSize Vec2
	Scroll      Vec2
	ZIndex      int
	Open        bool
	Collapsed   bool

	Head   CommandPtr
	Tail   CommandPtr
	IsRoot bool
}

// getContainerBare resolves id to a *Container without allocating or
// bumping LRU — used when a pure lookup (get_container(name)) is wanted
// without the side effects begin_window triggers.
func (c *Context) getContainerBare(id Id) *Container {
	idx := poolGet(c.containerPool[:], id)
	if idx < 0 {
		return nil
	}
	return &c.containers[idx]
}

// GetContainer looks up or allocates the container for id. With
// opt&OptClosed set, a missing container is never allocated (nil is
// returned instead) — the discipline a popup's default-closed state
// relies on.
func (c *Context) GetContainer(id Id, opt Option) *Container {
	if idx := poolGet(c.containerPool[:], id); idx >= 0 {
		poolUpdate(c.containerPool[:], idx, c.frame)
		return &c.containers[idx]
	}
	if opt.has(OptClosed) {
		return nil
	}
	idx := poolInit(c.containerPool[:], id, c.frame)
	c.containers[idx] = Container{id: id, Open: true}
	cnt := &c.containers[idx]
	c.BringToFront(cnt)
	return cnt
}

// GetContainerByName hashes name as a top-level id (seeded only by the
// empty id stack, matching how a root window derives its own id) and
// looks it up without allocating.
func (c *Context) GetContainerByName(name string) *Container {
	return c.getContainerBare(fnv1a(fnvOffset32, []byte(name)))
}

// BringToFront assigns cnt the next z-index, making it the topmost
// container.
func (c *Context) BringToFront(cnt *Container) {
	c.lastZIndex++
	cnt.ZIndex = c.lastZIndex
}

// GetCurrentContainer returns the container on top of the container
// stack, i.e. the one any widget call right now would draw into.
func (c *Context) GetCurrentContainer() *Container {
	return c.containerStack.top()
}

// beginRootContainer starts a root container's (window/popup) bracketed
// command range: it pushes a Jump placeholder (the future Head), pushes
// the container onto both the container and root-list stacks, and
// resets clipping to the unclipped sentinel (the caller pushes the body
// clip once the title bar is drawn). Head's own destination is patched by
// endRootContainer; the chain that splices roots into z-order targets
// Head+record-size (the content right after it), not Head itself — see
// EndFrame in frame.go.
func (c *Context) beginRootContainer(cnt *Container) {
	cnt.Head = writeJumpPlaceholder(&c.commands)
	cnt.IsRoot = true
	c.containerStack.push(cnt)
	c.rootStack.push(cnt)

	if cnt.Rect.Contains(c.mousePos) && (c.nextHoverRoot == nil || cnt.ZIndex > c.nextHoverRoot.ZIndex) {
		c.nextHoverRoot = cnt
	}

	// Clipping resets here (rather than inheriting the enclosing root's
	// clip) so a popup opened from within another root isn't clipped to
	// its parent's body.
	c.clipStack.push(unclippedRect)
}

// endRootContainer closes the bracket opened by beginRootContainer: it
// writes the Tail jump placeholder, patches Head's own jump to land just
// past Tail (so encountering Head inline — e.g. a popup's bracket sitting
// inside its parent's content — skips the whole root as if it were never
// emitted there), pops the clip reset, and pops the container off the
// container stack. It stays on the root-list stack, which EndFrame sorts
// into z-order.
func (c *Context) endRootContainer() {
	cnt := c.containerStack.top()
	cnt.Tail = writeJumpPlaceholder(&c.commands)
	patchJump(&c.commands, cnt.Head, c.commands.Len())
	c.PopClipRect()
	c.containerStack.pop()
}
