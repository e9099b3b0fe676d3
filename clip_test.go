package immui

import "testing"

func TestGetClipRectDefaultsToUnclipped(t *testing.T) {
	c := NewContext()
	if got := c.GetClipRect(); got != unclippedRect {
		t.Fatalf("expected an empty clip stack to report the unclipped sentinel, got %+v", got)
	}
}

func TestPushClipRectIntersectsWithParent(t *testing.T) {
	c := NewContext()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	c.PushClipRect(Rect{X: 5, Y: 5, W: 10, H: 10})

	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got := c.GetClipRect(); got != want {
		t.Fatalf("GetClipRect = %+v, want %+v", got, want)
	}
}

func TestPopClipRectRestoresParent(t *testing.T) {
	c := NewContext()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	c.PushClipRect(Rect{X: 5, Y: 5, W: 10, H: 10})
	c.PopClipRect()

	want := Rect{X: 0, Y: 0, W: 10, H: 10}
	if got := c.GetClipRect(); got != want {
		t.Fatalf("GetClipRect after pop = %+v, want %+v", got, want)
	}
}

func TestCheckClipNoneWhenFullyInside(t *testing.T) {
	c := NewContext()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 100, H: 100})
	if got := c.CheckClip(Rect{X: 10, Y: 10, W: 5, H: 5}); got != ClipNone {
		t.Fatalf("expected ClipNone, got %v", got)
	}
}

func TestCheckClipAllWhenFullyOutside(t *testing.T) {
	c := NewContext()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	if got := c.CheckClip(Rect{X: 50, Y: 50, W: 5, H: 5}); got != ClipAll {
		t.Fatalf("expected ClipAll, got %v", got)
	}
}

func TestCheckClipPartWhenStraddling(t *testing.T) {
	c := NewContext()
	c.PushClipRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	if got := c.CheckClip(Rect{X: 5, Y: 5, W: 10, H: 10}); got != ClipPart {
		t.Fatalf("expected ClipPart, got %v", got)
	}
}
