package immui

// Id is a hash-derived identifier deriving a widget's identity from its
// name and enclosing scope. Grounded on the FNV-1a seeding discipline in
// _examples/other_examples's Zyko0-microui-ebitengine/helpers.go.
type Id uint32

const (
	fnvOffset32 Id = 0x811c9dc5
	fnvPrime32  Id = 16777619
)

// fnv1a hashes data into seed using the 32-bit FNV-1a algorithm.
func fnv1a(seed Id, data []byte) Id {
	h := seed
	for _, b := range data {
		h ^= Id(b)
		h *= fnvPrime32
	}
	return h
}

// GetID computes the id of bytes seeded by the top of the id stack (or
// the constant FNV offset basis if the stack is empty), and records it as
// LastID without pushing it.
func (c *Context) GetID(data []byte) Id {
	seed := c.idStack.topOr(fnvOffset32)
	id := fnv1a(seed, data)
	c.lastID = id
	return id
}

// GetIDStr is a convenience wrapper over GetID for string names, the
// common case for widget labels.
func (c *Context) GetIDStr(name string) Id {
	return c.GetID([]byte(name))
}

// PushID computes the id of data and pushes it as the new seed for
// nested GetID calls — the discipline that gives two widgets with the
// same local name in different containers distinct ids.
func (c *Context) PushID(data []byte) Id {
	id := c.GetID(data)
	c.idStack.push(id)
	return id
}

// PopID discards the top of the id stack.
func (c *Context) PopID() {
	c.idStack.pop()
}
