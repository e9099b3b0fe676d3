package immui

import "testing"

func TestButtonSubmitsOnClick(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	c.LayoutRow(1, []int32{20}, 10)
	c.InputMouseMove(Vec2{X: 5, Y: 5})
	c.Button("OK", IconNone, 0) // first pass: establishes hover, no button down

	c.LayoutRow(1, []int32{20}, 10) // next row down; hoverId still holds the button's id
	c.mouseDown = MouseLeft
	c.mousePressed = MouseLeft
	res := c.Button("OK", IconNone, 0)

	if !res.Submit() {
		t.Fatalf("expected Button to report ResultSubmit on the press frame, got %v", res)
	}
}

func TestButtonNoSubmitWhenMouseElsewhere(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	c.LayoutRow(1, []int32{20}, 10)
	c.InputMouseMove(Vec2{X: 90, Y: 90})
	c.mouseDown = MouseLeft
	c.mousePressed = MouseLeft
	res := c.Button("OK", IconNone, 0)

	if res.Submit() {
		t.Fatalf("expected no submit when the press lands outside the button rect")
	}
}

func TestCheckboxTogglesOnClick(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	state := false

	c.LayoutRow(1, []int32{20}, 10)
	c.InputMouseMove(Vec2{X: 2, Y: 2})
	c.Checkbox("enabled", &state)

	c.LayoutRow(1, []int32{20}, 10)
	c.mouseDown = MouseLeft
	c.mousePressed = MouseLeft
	res := c.Checkbox("enabled", &state)

	if !res.Change() {
		t.Fatalf("expected ResultChange on the click frame, got %v", res)
	}
	if !state {
		t.Fatalf("expected state to flip to true")
	}
}

func TestSliderDragUpdatesValue(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	value := 0.0
	c.LayoutRow(1, []int32{100}, 10)
	c.Slider(&value, 0, 100, 0, "", 0) // establish id + rect, no interaction yet
	id := c.LastID()

	c.LayoutRow(1, []int32{100}, 10)
	c.focusId = id
	c.mouseDown = MouseLeft
	c.mousePressed = MouseLeft
	c.InputMouseMove(Vec2{X: 50, Y: 5})

	res := c.Slider(&value, 0, 100, 0, "", 0)

	if !res.Change() {
		t.Fatalf("expected ResultChange while dragging the slider, got %v", res)
	}
	if value <= 0 || value > 100 {
		t.Fatalf("expected value to move toward the drag position, got %v", value)
	}
}

func TestSliderShiftClickEntersEditMode(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	value := 5.0
	c.LayoutRow(1, []int32{100}, 10)
	c.InputMouseMove(Vec2{X: 10, Y: 5})
	c.Slider(&value, 0, 100, 0, "", 0) // establishes hover
	id := c.LastID()

	c.LayoutRow(1, []int32{100}, 10)
	c.hoverId = id
	c.keyDown |= KeyShift
	c.mousePressed = MouseLeft

	res := c.Slider(&value, 0, 100, 0, "", 0)

	if res != 0 {
		t.Fatalf("expected Slider to report no result while switching into edit mode, got %v", res)
	}
	if c.numberEditId != id {
		t.Fatalf("expected shift-click to enter direct numeric entry for this slider")
	}
}

func TestNumberDragScrubsValue(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	value := 10.0
	c.LayoutRow(1, []int32{40}, 10)
	c.Number(&value, 1, "", 0)
	id := c.LastID()

	c.LayoutRow(1, []int32{40}, 10)
	c.focusId = id
	c.mouseDown = MouseLeft
	c.mouseDelta = Vec2{X: 4, Y: 0} // mouseDelta is normally derived in BeginFrame; set directly here

	res := c.Number(&value, 1, "", 0)

	if !res.Change() {
		t.Fatalf("expected ResultChange while scrubbing, got %v", res)
	}
	if value != 14 {
		t.Fatalf("expected value += delta.X*step = 10+4 = 14, got %v", value)
	}
}

func TestTextboxAppendsInputText(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	buf := ""
	c.LayoutRow(1, []int32{50}, 10)
	c.Textbox(&buf, 0)
	id := c.LastID()

	c.LayoutRow(1, []int32{50}, 10)
	c.focusId = id
	c.InputText("hi")
	res := c.Textbox(&buf, 0)

	if !res.Change() {
		t.Fatalf("expected ResultChange when text is appended, got %v", res)
	}
	if buf != "hi" {
		t.Fatalf("expected buf to accumulate typed text, got %q", buf)
	}
}

func TestTextboxBackspaceRemovesWholeGraphemeCluster(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	// "e" + COMBINING ACUTE ACCENT (U+0301): one grapheme cluster, three bytes.
	buf := "é"
	c.LayoutRow(1, []int32{50}, 10)
	c.Textbox(&buf, 0)
	id := c.LastID()

	c.LayoutRow(1, []int32{50}, 10)
	c.focusId = id
	c.keyDown |= KeyBackspace
	c.keyPressed |= KeyBackspace
	c.Textbox(&buf, 0)

	if buf != "" {
		t.Fatalf("expected backspace to remove the entire combining cluster at once, got %q", buf)
	}
}

func TestTextboxSubmitOnEnterBlursFocus(t *testing.T) {
	c := newTestContext()
	c.BeginFrame()
	pushTestRoot(c)
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))

	buf := "done"
	c.LayoutRow(1, []int32{50}, 10)
	c.Textbox(&buf, 0)
	id := c.LastID()

	c.LayoutRow(1, []int32{50}, 10)
	c.focusId = id
	c.keyPressed |= KeyReturn
	res := c.Textbox(&buf, 0)

	if !res.Submit() {
		t.Fatalf("expected ResultSubmit on Enter, got %v", res)
	}
	if c.focusId != 0 {
		t.Fatalf("expected Enter to clear focus from the textbox")
	}
}
