package entity

import "time"

// TimeSlot is a half-open [Start, End) candidate interval produced by the slot grid.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BusyInterval is one occupied [Start, End) interval from a participant's calendar.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Bitmask marks, per grid slot, whether the owning participant is free.
// Index i corresponds 1:1 to slot i of the grid it was encoded against.
type Bitmask []bool

// CountFree returns the number of free slots in the mask.
func (m Bitmask) CountFree() int {
	n := 0
	for _, free := range m {
		if free {
			n++
		}
	}
	return n
}
