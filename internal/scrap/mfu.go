package scrap

// Selector picks the resource to evict from a full inventory.
type Selector interface {
	// SelectVictim returns the index of the resource to replace.
	// ok is false only when items is empty.
	SelectVictim(items []Resource) (index int, ok bool)
}

// MFU evicts the most frequently used resource: the one with the highest
// counter. Heavy use signals degradation here, so it is a liability rather
// than a reason to keep the item.
//
// Ties go to the earliest slot, which keeps replacement order deterministic.
type MFU struct{}

// SelectVictim implements Selector.
func (MFU) SelectVictim(items []Resource) (int, bool) {
	if len(items) == 0 {
		return -1, false
	}

	best := 0
	for i := 1; i < len(items); i++ {
		if items[i].Counter > items[best].Counter {
			best = i
		}
	}
	return best, true
}

var _ Selector = MFU{}
