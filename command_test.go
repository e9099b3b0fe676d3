package immui

import "testing"

func TestWriteCmdRoundTripsRect(t *testing.T) {
	var cl CommandList
	ptr := writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 1, Y: 2, W: 3, H: 4}, Color: Color{R: 9, A: 255}})

	got := cl.ReadRect(ptr)
	want := RectCmd{Rect: Rect{X: 1, Y: 2, W: 3, H: 4}, Color: Color{R: 9, A: 255}}
	if got != want {
		t.Fatalf("ReadRect = %+v, want %+v", got, want)
	}
}

func TestStoreStringAndLookupString(t *testing.T) {
	var cl CommandList
	idx := cl.StoreString("hello")
	if idx != 1 {
		t.Fatalf("expected first StoreString to return index 1, got %d", idx)
	}
	if got := cl.LookupString(idx); got != "hello" {
		t.Fatalf("LookupString(1) = %q", got)
	}
	if got := cl.LookupString(0); got != "" {
		t.Fatalf("LookupString(0) should be empty, got %q", got)
	}
	if got := cl.LookupString(99); got != "" {
		t.Fatalf("LookupString of an out-of-range index should be empty, got %q", got)
	}
}

func TestResetClearsBufferAndStrings(t *testing.T) {
	var cl CommandList
	cl.StoreString("x")
	writeCmd(&cl, CmdRect, RectCmd{})
	if cl.Len() == 0 {
		t.Fatalf("expected a nonzero cursor before Reset")
	}
	cl.Reset()
	if cl.Len() != 0 {
		t.Fatalf("expected Reset to rewind the cursor, got %d", cl.Len())
	}
	if cl.LookupString(1) != "" {
		t.Fatalf("expected Reset to clear the string table")
	}
}

func TestIteratorSkipsJumpsInLinearOrder(t *testing.T) {
	var cl CommandList
	r1 := writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 1}})
	jumpPtr := writeJumpPlaceholder(&cl)
	r2 := writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 2}})
	patchJump(&cl, jumpPtr, r2) // a Jump to the very next record

	it := cl.Iterate()
	typ, ptr, ok := it.Next()
	if !ok || typ != CmdRect || ptr != r1 {
		t.Fatalf("expected first command at %d, got type=%v ptr=%d ok=%v", r1, typ, ptr, ok)
	}
	typ, ptr, ok = it.Next()
	if !ok || typ != CmdRect || ptr != r2 {
		t.Fatalf("expected the Jump itself to be skipped and %d returned next, got type=%v ptr=%d ok=%v", r2, typ, ptr, ok)
	}
}

func TestIteratorChasesJump(t *testing.T) {
	var cl CommandList
	writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 1}})
	jumpPtr := writeJumpPlaceholder(&cl)
	skippedPtr := writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 2}})
	dest := writeCmd(&cl, CmdRect, RectCmd{Rect: Rect{X: 3}})
	patchJump(&cl, jumpPtr, dest)

	it := cl.Iterate()
	_, _, _ = it.Next() // the first Rect (X:1)

	typ, ptr, ok := it.Next()
	if !ok || typ != CmdRect || ptr != dest {
		t.Fatalf("expected the Jump to redirect straight to %d, got type=%v ptr=%d ok=%v", dest, typ, ptr, ok)
	}
	if ptr == skippedPtr {
		t.Fatalf("iterator must not surface the record the Jump skipped over")
	}
	if _, _, ok = it.Next(); ok {
		t.Fatalf("expected no further commands after the jump target")
	}
}

func TestWriteCmdPanicsWhenBufferFull(t *testing.T) {
	var cl CommandList
	cl.idx = CmdBufCapacity // simulate an already-full buffer

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected writeCmd to panic once capacity is exhausted")
		}
		f, ok := r.(*Fault)
		if !ok || f.Kind != BufferOverflow {
			t.Fatalf("unexpected panic value: %#v", r)
		}
	}()
	writeCmd(&cl, CmdRect, RectCmd{})
}

func TestPatchJumpRejectsNonJumpRecord(t *testing.T) {
	var cl CommandList
	rectPtr := writeCmd(&cl, CmdRect, RectCmd{})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected patchJump to panic when the target record isn't a Jump")
		}
		f, ok := r.(*Fault)
		if !ok || f.Kind != InvalidCommandIndex {
			t.Fatalf("unexpected panic value: %#v", r)
		}
	}()
	patchJump(&cl, rectPtr, 0)
}

func TestReadTextResolvesStringTable(t *testing.T) {
	var cl CommandList
	idx := cl.StoreString("abc")
	ptr := writeCmd(&cl, CmdText, TextCmd{StrIdx: idx, StrLen: 3, Pos: Vec2{X: 1, Y: 2}})

	cmd, str := cl.ReadText(ptr)
	if str != "abc" {
		t.Fatalf("expected resolved string %q, got %q", "abc", str)
	}
	if cmd.Pos != (Vec2{X: 1, Y: 2}) {
		t.Fatalf("unexpected TextCmd: %+v", cmd)
	}
}
