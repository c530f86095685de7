package selection

// SelectionState is an immutable snapshot of both slots.
type SelectionState struct {
	Day   ImageRef
	Night ImageRef
}

// Get returns the reference held for slot, or Empty for an unknown slot.
func (s SelectionState) Get(slot ImageSlot) ImageRef {
	switch slot {
	case Day:
		return s.Day
	case Night:
		return s.Night
	}
	return Empty
}

// With returns a copy of s with slot replaced by ref. Unknown slots leave s untouched.
func (s SelectionState) With(slot ImageSlot, ref ImageRef) SelectionState {
	switch slot {
	case Day:
		s.Day = ref
	case Night:
		s.Night = ref
	}
	return s
}
