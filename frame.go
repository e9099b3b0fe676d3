package immui

import "sort"

// MouseButton is a bitmask of pointer buttons, set via InputMouseDown /
// InputMouseUp.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bitmask of the modifier/action keys update_control's focus and
// submit transitions care about. Printable text arrives separately
// through InputText.
type Key uint16

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
)

// Context is the single handle holding everything the library keeps
// between calls within a frame, and everything it keeps across frames:
// the fixed-capacity stacks, the pools, the command buffer, input state,
// and the focus/hover identities. One Context serves one UI surface.
//
// Field set and the begin_frame/end_frame split are grounded on
// other_examples/ShadyHippo-debugui's Context struct and Zyko0's
// BeginFrame/EndFrame in controls.go; the root-container jump-patching
// in EndFrame is grounded on the same corpus's z-order handling and on
// the Head/Tail bracketing already established in container.go.
type Context struct {
	style Style

	commands CommandList
	rootJump CommandPtr

	containerStack stack[*Container]
	rootStack      stack[*Container]
	clipStack      stack[Rect]
	idStack        stack[Id]
	layoutStack    stack[layoutCtx]

	containers    [ContainerPoolSize]Container
	containerPool [ContainerPoolSize]poolItem

	treeNodePool [TreeNodePoolSize]poolItem

	frame      int
	lastZIndex int
	lastID     Id
	lastRect   Rect

	hoverRoot     *Container
	nextHoverRoot *Container

	hoverId   Id
	focusId   Id
	keepFocus bool

	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2

	mouseDown     MouseButton
	mousePressed  MouseButton
	lastMouseDown MouseButton

	keyDown     Key
	keyPressed  Key
	lastKeyDown Key

	inputText string

	numberEditId  Id
	numberEditBuf string

	scrollTarget *Container

	textWidthFn  func(Font, string) int32
	textHeightFn func(Font) int32
	drawFrameFn  func(c *Context, rect Rect, colorId ColorId)
}

// NewContext returns a Context with the default style and every stack and
// pool allocated at its fixed capacity. Call BeginFrame before issuing
// any widget calls.
func NewContext() *Context {
	return &Context{
		style:          DefaultStyle(),
		containerStack: newStack[*Container]("container", 32),
		rootStack:      newStack[*Container]("root-list", 32),
		clipStack:      newStack[Rect]("clip", 32),
		idStack:        newStack[Id]("id", 32),
		layoutStack:    newStack[layoutCtx]("layout", LayoutStackSize),
	}
}

// Style returns the context's current style, mutable in place by the
// caller before the first widget call of a frame (e.g. ctx.Style().Colors[immui.ColorText] = ...).
func (c *Context) Style() *Style { return &c.style }

// LastID returns the id most recently computed by GetID, without
// requiring the caller to have pushed it.
func (c *Context) LastID() Id { return c.lastID }

// LastRect returns the rect most recently returned by LayoutNext, the
// hook composite widgets use to draw decoration around a plain widget's
// area without calling LayoutNext twice.
func (c *Context) LastRect() Rect { return c.lastRect }

// HoverID and FocusID expose the identities update_control and
// composite widgets need to read without mutating.
func (c *Context) HoverID() Id { return c.hoverId }
func (c *Context) FocusID() Id { return c.focusId }

// SetFocus transfers keyboard focus to id, the operation a widget calls
// on itself when clicked or tabbed to.
func (c *Context) SetFocus(id Id) {
	c.focusId = id
	c.keepFocus = true
}

// BeginFrame resets the per-frame command buffer and string table,
// derives this frame's mouse and key press edges from the down-state set by
// the Input* setters since the last frame, and reserves the entry jump
// patched at EndFrame once root z-order is known.
func (c *Context) BeginFrame() {
	if !c.containerStack.empty() || !c.clipStack.empty() || !c.idStack.empty() || !c.layoutStack.empty() {
		fail(UnbalancedFrame, "BeginFrame called with a non-empty stack left over from the previous frame")
	}

	c.frame++
	c.commands.Reset()
	c.rootStack.clear()

	c.scrollTarget = nil
	c.hoverRoot = c.nextHoverRoot
	c.nextHoverRoot = nil

	c.mousePressed = c.mouseDown &^ c.lastMouseDown
	c.keyPressed = c.keyDown &^ c.lastKeyDown
	c.mouseDelta = Vec2{X: c.mousePos.X - c.lastMousePos.X, Y: c.mousePos.Y - c.lastMousePos.Y}

	c.rootJump = writeJumpPlaceholder(&c.commands)
}

// EndFrame asserts every stack was balanced by matching End* calls,
// realizes root z-order by chaining the entry jump and each root's Tail
// to the content just past the next root's Head in z-sorted order (the
// Head record itself is only ever landed on when it's encountered
// inline, e.g. a popup nested in its parent's content — see
// endRootContainer), and rolls the input edge state forward for the
// next BeginFrame.
func (c *Context) EndFrame() {
	if !c.containerStack.empty() || !c.clipStack.empty() || !c.idStack.empty() || !c.layoutStack.empty() {
		fail(UnbalancedFrame, "EndFrame called with an unclosed Begin/Push — check for a missing End/Pop call")
	}

	roots := c.rootStack.items()
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].ZIndex < roots[j].ZIndex })

	if len(roots) == 0 {
		patchJump(&c.commands, c.rootJump, c.commands.Len())
	} else {
		patchJump(&c.commands, c.rootJump, roots[0].Head+cmdHeaderSize+jumpCmdSize)
		for i := 1; i < len(roots); i++ {
			patchJump(&c.commands, roots[i-1].Tail, roots[i].Head+cmdHeaderSize+jumpCmdSize)
		}
		patchJump(&c.commands, roots[len(roots)-1].Tail, c.commands.Len())
	}

	if !c.keepFocus {
		// No widget asserted focus this frame (it wasn't drawn, or lost
		// the hit test) — focus clears, matching a click-away-to-blur.
		c.focusId = 0
	}
	c.keepFocus = false

	if c.scrollTarget != nil {
		c.scrollTarget.Scroll.X += c.scrollDelta.X
		c.scrollTarget.Scroll.Y += c.scrollDelta.Y
	}

	c.lastMouseDown = c.mouseDown
	c.lastKeyDown = c.keyDown
	c.lastMousePos = c.mousePos
	c.scrollDelta = Vec2{}
	c.inputText = ""
}

// Commands returns an Iterator over this frame's realized, z-ordered
// command stream, the handle a rendering backend drains after EndFrame.
func (c *Context) Commands() *Iterator {
	return c.commands.Iterate()
}
