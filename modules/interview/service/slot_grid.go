package service

import (
	"errors"
	"time"

	"smarthire-api/modules/interview/entity"
)

// ErrInvalidWindow is returned when the search window or slot duration is
// malformed. This is a caller bug, not a scheduling outcome.
var ErrInvalidWindow = errors.New("invalid scheduling window")

// GenerateSlots discretizes [windowStart, windowEnd) into consecutive
// fixed-duration slots. A trailing remainder shorter than slotDuration is
// dropped rather than padded.
func GenerateSlots(windowStart, windowEnd time.Time, slotDuration time.Duration) ([]entity.TimeSlot, error) {
	if slotDuration <= 0 {
		return nil, ErrInvalidWindow
	}
	if !windowEnd.After(windowStart) {
		return nil, ErrInvalidWindow
	}

	var slots []entity.TimeSlot
	for current := windowStart; !current.Add(slotDuration).After(windowEnd); current = current.Add(slotDuration) {
		slots = append(slots, entity.TimeSlot{
			Start: current,
			End:   current.Add(slotDuration),
		})
	}
	return slots, nil
}
