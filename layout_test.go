package immui

import "testing"

func TestLayoutRowFixedWidths(t *testing.T) {
	c := newTestContext()
	l := newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100})
	c.layoutStack.push(l)
	c.LayoutRow(2, []int32{20, 30}, 10)

	r1 := c.LayoutNext()
	if r1 != (Rect{X: 0, Y: 0, W: 20, H: 10}) {
		t.Errorf("first column = %+v", r1)
	}
	r2 := c.LayoutNext()
	if r2 != (Rect{X: 20 + c.style.Spacing, Y: 0, W: 30, H: 10}) {
		t.Errorf("second column = %+v", r2)
	}
}

func TestLayoutRowWraps(t *testing.T) {
	c := newTestContext()
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))
	c.LayoutRow(1, []int32{10}, 5)

	r1 := c.LayoutNext()
	r2 := c.LayoutNext() // row is full (1 item), must wrap to a new row
	if r2.Y <= r1.Y {
		t.Errorf("expected second call to start a new row below the first: r1=%+v r2=%+v", r1, r2)
	}
	if r2.X != r1.X {
		t.Errorf("wrapped row should reset X: r1=%+v r2=%+v", r1, r2)
	}
}

func TestLayoutWidthNegativeFillsRemaining(t *testing.T) {
	c := newTestContext()
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))
	c.LayoutRow(2, []int32{20, -1}, 10)

	c.LayoutNext()
	r2 := c.LayoutNext()
	want := 100 - 20 - c.style.Spacing
	if r2.W != want {
		t.Errorf("fill-remaining column width = %d, want %d", r2.W, want)
	}
}

func TestLayoutSetNextOverride(t *testing.T) {
	c := newTestContext()
	c.layoutStack.push(newLayoutCtx(Rect{X: 5, Y: 5, W: 100, H: 100}))
	c.LayoutRow(1, []int32{10}, 10)

	c.LayoutSetNext(Rect{X: 1, Y: 2, W: 3, H: 4}, true)
	r := c.LayoutNext()
	want := Rect{X: 1 + 5, Y: 2 + 5, W: 3, H: 4}
	if r != want {
		t.Errorf("relative LayoutSetNext = %+v, want %+v", r, want)
	}

	c.LayoutSetNext(Rect{X: 9, Y: 9, W: 1, H: 1}, false)
	r2 := c.LayoutNext()
	if r2 != (Rect{X: 9, Y: 9, W: 1, H: 1}) {
		t.Errorf("absolute LayoutSetNext = %+v", r2)
	}
}

func TestLayoutBeginEndColumnMergesExtent(t *testing.T) {
	c := newTestContext()
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 100, H: 100}))
	c.LayoutRow(1, []int32{50}, 20)

	c.LayoutBeginColumn()
	c.LayoutRow(1, []int32{10}, 10)
	c.LayoutNext()
	c.LayoutEndColumn()

	parent := c.layoutStack.topPtr()
	if parent.max.X < 10 || parent.max.Y < 10 {
		t.Errorf("parent extent not updated from child column: %+v", parent.max)
	}
}

func TestLayoutRowOverflowPanics(t *testing.T) {
	c := newTestContext()
	c.layoutStack.push(newLayoutCtx(Rect{X: 0, Y: 0, W: 10, H: 10}))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for too many layout columns")
		}
		f, ok := r.(*Fault)
		if !ok || f.Kind != StackOverflow {
			t.Errorf("unexpected panic value: %#v", r)
		}
	}()
	c.LayoutRow(MaxLayoutColumns+1, nil, 0)
}
