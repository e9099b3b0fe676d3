package immui

import "testing"

func TestGetIDIsDeterministic(t *testing.T) {
	c := NewContext()
	a := c.GetIDStr("widget")
	b := c.GetIDStr("widget")
	if a != b {
		t.Fatalf("expected the same name to hash to the same id, got %d and %d", a, b)
	}
}

func TestGetIDDiffersByName(t *testing.T) {
	c := NewContext()
	a := c.GetIDStr("foo")
	b := c.GetIDStr("bar")
	if a == b {
		t.Fatalf("expected different names to hash to different ids")
	}
}

func TestPushIDChangesScopeSeed(t *testing.T) {
	c := NewContext()
	outer := c.GetIDStr("widget")

	c.PushID([]byte("scope"))
	inner := c.GetIDStr("widget")
	c.PopID()

	after := c.GetIDStr("widget")

	if outer == inner {
		t.Fatalf("expected the same local name to hash differently inside a pushed scope")
	}
	if outer != after {
		t.Fatalf("expected PopID to restore the id computed before the scope was pushed")
	}
}

func TestGetIDRecordsLastID(t *testing.T) {
	c := NewContext()
	id := c.GetIDStr("widget")
	if c.LastID() != id {
		t.Fatalf("expected GetID to record its result as LastID")
	}
}
