package immui

// poolItem is one slot of a fixed-capacity LRU pool keyed by Id. Two
// pools use this shape: containers and treenodes.
//
// The scanning discipline — linear search, ties broken by ascending
// index — is adapted from the registration-slice scan in germtb-goli's
// focus.go (Register/Unregister/Next search a slice by identity); here
// the search key is an Id and the slice never grows past its fixed
// capacity.
type poolItem struct {
	id         Id
	lastUpdate int
	used       bool
}

// poolGet returns the index of the slot holding id, or -1 if none does.
func poolGet(items []poolItem, id Id) int {
	for i := range items {
		if items[i].used && items[i].id == id {
			return i
		}
	}
	return -1
}

// poolInit assigns id to the slot with the smallest lastUpdate (ties
// broken by index order, scanning from 0), stamps it with currentFrame,
// and returns its index. It fails with PoolExhausted if every slot was
// already updated this frame (nothing is evictable).
func poolInit(items []poolItem, id Id, currentFrame int) int {
	n := -1
	for i := range items {
		if !items[i].used {
			n = i
			break
		}
		if n == -1 || items[i].lastUpdate < items[n].lastUpdate {
			n = i
		}
	}
	if n == -1 {
		fail(PoolExhausted, "no evictable slot among %d items", len(items))
	}
	if items[n].used && items[n].lastUpdate >= currentFrame {
		fail(PoolExhausted, "all %d items were referenced this frame", len(items))
	}
	items[n] = poolItem{id: id, lastUpdate: currentFrame, used: true}
	return n
}

// poolUpdate stamps the slot at idx as referenced this frame (the LRU
// "touch" operation).
func poolUpdate(items []poolItem, idx int, currentFrame int) {
	items[idx].lastUpdate = currentFrame
}
