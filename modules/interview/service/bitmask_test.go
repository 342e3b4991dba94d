package service

import (
	"testing"
	"time"

	"smarthire-api/modules/interview/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFor(t *testing.T, hours int) []entity.TimeSlot {
	t.Helper()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slots, err := GenerateSlots(start, start.Add(time.Duration(hours)*time.Hour), 30*time.Minute)
	require.NoError(t, err)
	return slots
}

func TestEncodeAvailability_NoBusyMeansAllFree(t *testing.T) {
	slots := gridFor(t, 2)

	mask := EncodeAvailability(nil, slots)
	require.Len(t, mask, 4)
	assert.Equal(t, 4, mask.CountFree())
}

func TestEncodeAvailability_BusyBlocksOverlappingSlots(t *testing.T) {
	slots := gridFor(t, 2)
	busy := []entity.BusyInterval{
		// 9:15-9:45 straddles the first two slots.
		{Start: slots[0].Start.Add(15 * time.Minute), End: slots[0].Start.Add(45 * time.Minute)},
	}

	mask := EncodeAvailability(busy, slots)
	assert.Equal(t, entity.Bitmask{false, false, true, true}, mask)
}

func TestEncodeAvailability_TouchingEndpointsDoNotOverlap(t *testing.T) {
	slots := gridFor(t, 2)
	busy := []entity.BusyInterval{
		// Ends exactly when slot 1 starts and resumes exactly when slot 1 ends.
		{Start: slots[0].Start, End: slots[1].Start},
		{Start: slots[1].End, End: slots[3].End},
	}

	mask := EncodeAvailability(busy, slots)
	assert.Equal(t, entity.Bitmask{false, true, false, false}, mask)
}

func TestIntersectBitmasks_CommonSlotSurvives(t *testing.T) {
	slots := gridFor(t, 2)

	// Interviewer busy 9:00-10:00, candidate busy 10:30-11:00. Only 10:00-10:30
	// is commonly free.
	interviewer := EncodeAvailability([]entity.BusyInterval{
		{Start: slots[0].Start, End: slots[1].End},
	}, slots)
	candidate := EncodeAvailability([]entity.BusyInterval{
		{Start: slots[3].Start, End: slots[3].End},
	}, slots)

	common, err := IntersectBitmasks([]entity.Bitmask{interviewer, candidate})
	require.NoError(t, err)

	slot, ok := SelectFirstFree(common, slots)
	require.True(t, ok)
	assert.Equal(t, slots[2], slot)
}

func TestIntersectBitmasks_OrderIndependent(t *testing.T) {
	a := entity.Bitmask{true, false, true, true}
	b := entity.Bitmask{true, true, false, true}
	c := entity.Bitmask{false, true, true, true}

	forward, err := IntersectBitmasks([]entity.Bitmask{a, b, c})
	require.NoError(t, err)
	reverse, err := IntersectBitmasks([]entity.Bitmask{c, b, a})
	require.NoError(t, err)

	assert.Equal(t, forward, reverse)
	assert.Equal(t, entity.Bitmask{false, false, false, true}, forward)
}

func TestIntersectBitmasks_Errors(t *testing.T) {
	_, err := IntersectBitmasks(nil)
	assert.ErrorIs(t, err, ErrNoBitmasks)

	_, err = IntersectBitmasks([]entity.Bitmask{{true, true}, {true}})
	assert.ErrorIs(t, err, ErrMismatchedBitmaskLength)
}

func TestSelectFirstFree_NoCommonSlot(t *testing.T) {
	slots := gridFor(t, 1)

	_, ok := SelectFirstFree(entity.Bitmask{false, false}, slots)
	assert.False(t, ok)
}

func TestSelectFirstFree_PicksEarliest(t *testing.T) {
	slots := gridFor(t, 2)

	slot, ok := SelectFirstFree(entity.Bitmask{false, true, true, false}, slots)
	require.True(t, ok)
	assert.Equal(t, slots[1], slot)
}
