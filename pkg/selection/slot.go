// Package selection holds the user's Day and Night image choices, persists them and
// notifies observers whenever one of them changes.
package selection

// ImageSlot identifies one of the two selection roles.
type ImageSlot int

// The two image slots.
const (
	Day ImageSlot = iota
	Night
)

// slotCount is the number of valid slots; it sizes per-slot arrays.
const slotCount = 2

var slotInfo = [slotCount]struct {
	key  string // persistence key
	code int    // picker request code
	name string
}{
	Day:   {key: "day", code: 0, name: "Day"},
	Night: {key: "night", code: 1, name: "Night"},
}

// Slots returns every slot, Day first.
func Slots() []ImageSlot {
	return []ImageSlot{Day, Night}
}

// Valid reports whether s is a known slot.
func (s ImageSlot) Valid() bool {
	return s >= 0 && int(s) < slotCount
}

// Key returns the persistence key of the slot, or "" for an unknown slot.
func (s ImageSlot) Key() string {
	if !s.Valid() {
		return ""
	}
	return slotInfo[s].key
}

// Code returns the request code used to correlate picker results, or -1 for an unknown slot.
func (s ImageSlot) Code() int {
	if !s.Valid() {
		return -1
	}
	return slotInfo[s].code
}

func (s ImageSlot) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return slotInfo[s].name
}

// SlotForKey looks a slot up by its persistence key.
func SlotForKey(key string) (ImageSlot, bool) {
	for i, info := range slotInfo {
		if info.key == key {
			return ImageSlot(i), true
		}
	}
	return 0, false
}

// SlotForCode looks a slot up by its picker request code.
func SlotForCode(code int) (ImageSlot, bool) {
	for i, info := range slotInfo {
		if info.code == code {
			return ImageSlot(i), true
		}
	}
	return 0, false
}
