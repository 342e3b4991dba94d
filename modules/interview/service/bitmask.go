package service

import (
	"errors"

	"smarthire-api/modules/interview/entity"
)

var (
	// ErrNoBitmasks is returned when an intersection is requested over zero inputs.
	ErrNoBitmasks = errors.New("no bitmasks to intersect")
	// ErrMismatchedBitmaskLength is returned when input masks were encoded
	// against different slot grids. This is a caller bug.
	ErrMismatchedBitmaskLength = errors.New("mismatched bitmask lengths")
)

// EncodeAvailability converts one participant's busy intervals into a bitmask
// aligned to the slot grid. A slot is busy if it overlaps any busy interval
// under the half-open test; touching endpoints do not count as overlap.
// Pure and free of shared state, so callers may encode participants concurrently.
func EncodeAvailability(busy []entity.BusyInterval, slots []entity.TimeSlot) entity.Bitmask {
	mask := make(entity.Bitmask, len(slots))
	for i, slot := range slots {
		free := true
		for _, b := range busy {
			if slot.Start.Before(b.End) && slot.End.After(b.Start) {
				free = false
				break
			}
		}
		mask[i] = free
	}
	return mask
}

// IntersectBitmasks computes the position-wise AND of all masks: a slot is
// commonly free only when every participant is free. Input order does not
// affect the result.
func IntersectBitmasks(masks []entity.Bitmask) (entity.Bitmask, error) {
	if len(masks) == 0 {
		return nil, ErrNoBitmasks
	}

	length := len(masks[0])
	for _, m := range masks[1:] {
		if len(m) != length {
			return nil, ErrMismatchedBitmaskLength
		}
	}

	result := make(entity.Bitmask, length)
	copy(result, masks[0])
	for _, m := range masks[1:] {
		for i, free := range m {
			result[i] = result[i] && free
		}
	}
	return result, nil
}

// SelectFirstFree returns the earliest slot whose intersection bit is set.
// ok is false when no common slot exists; that is an expected business
// outcome, not an error.
func SelectFirstFree(mask entity.Bitmask, slots []entity.TimeSlot) (entity.TimeSlot, bool) {
	for i, free := range mask {
		if free && i < len(slots) {
			return slots[i], true
		}
	}
	return entity.TimeSlot{}, false
}
