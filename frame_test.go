package immui

import "testing"

func TestEndFrameRealizesRootZOrder(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()

	red := Color{R: 255, A: 255}
	blue := Color{B: 255, A: 255}

	cntA := c.GetContainer(c.GetIDStr("A"), 0)
	cntA.Rect = Rect{X: 0, Y: 0, W: 10, H: 10}
	cntA.Body = cntA.Rect
	c.beginRootContainer(cntA)
	c.DrawRect(Rect{X: 0, Y: 0, W: 10, H: 10}, red)
	c.endRootContainer()

	cntB := c.GetContainer(c.GetIDStr("B"), 0)
	cntB.Rect = Rect{X: 0, Y: 0, W: 10, H: 10}
	cntB.Body = cntB.Rect
	c.beginRootContainer(cntB)
	c.DrawRect(Rect{X: 0, Y: 0, W: 10, H: 10}, blue)
	c.BringToFront(cntB)
	c.endRootContainer()

	c.EndFrame()

	it := c.Commands()
	typ, ptr, ok := it.Next()
	if !ok || typ != CmdRect {
		t.Fatalf("expected first command to be a Rect, got type=%v ok=%v", typ, ok)
	}
	if got := c.commands.ReadRect(ptr).Color; got != red {
		t.Fatalf("expected back-to-front order to emit A (red) first, got %+v", got)
	}

	typ, ptr, ok = it.Next()
	if !ok || typ != CmdRect {
		t.Fatalf("expected second command to be a Rect, got type=%v ok=%v", typ, ok)
	}
	if got := c.commands.ReadRect(ptr).Color; got != blue {
		t.Fatalf("expected B (blue, brought to front) second, got %+v", got)
	}

	if _, _, ok = it.Next(); ok {
		t.Fatalf("expected no further commands")
	}
}

func TestEndFramePanicsOnUnbalancedStack(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 1, H: 1})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected EndFrame to panic on an unpopped clip rect")
		}
		f, ok := r.(*Fault)
		if !ok || f.Kind != UnbalancedFrame {
			t.Fatalf("unexpected panic value: %#v", r)
		}
	}()
	c.EndFrame()
}

func TestScrollDispatchToScrollTarget(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()

	cnt := c.GetContainer(c.GetIDStr("scrollable"), 0)
	cnt.ContentSize = Vec2{X: 0, Y: 1000}
	c.scrollTarget = cnt
	c.InputScroll(Vec2{X: 0, Y: 30})

	c.EndFrame()

	if cnt.Scroll.Y != 30 {
		t.Fatalf("expected scroll_target's Scroll.Y to receive the accumulated delta, got %d", cnt.Scroll.Y)
	}
}

func TestFocusClearsWithoutReassertion(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	id := c.GetIDStr("w")
	c.SetFocus(id)
	c.EndFrame()

	c.BeginFrame() // the widget is not drawn this frame
	c.EndFrame()

	if c.focusId != 0 {
		t.Fatalf("expected focus to clear at EndFrame when no widget reasserted it")
	}
}

func TestFocusPersistsWithReassertion(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	id := c.GetIDStr("w")
	c.SetFocus(id)
	c.EndFrame()

	c.BeginFrame()
	c.SetFocus(id) // widget re-asserts focus this frame too
	c.EndFrame()

	if c.focusId != id {
		t.Fatalf("expected focus to persist across a frame that reasserted it")
	}
}
