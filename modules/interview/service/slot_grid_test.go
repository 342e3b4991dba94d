package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_ExactFit(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	slots, err := GenerateSlots(start, end, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, start, slots[0].Start)
	assert.Equal(t, start.Add(30*time.Minute), slots[0].End)
	assert.Equal(t, end, slots[3].End)
}

func TestGenerateSlots_DropsTrailingRemainder(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Minute)

	slots, err := GenerateSlots(start, end, 30*time.Minute)
	require.NoError(t, err)

	// 100 minutes fits three full 30-minute slots; the 10-minute tail is dropped.
	require.Len(t, slots, 3)
	assert.Equal(t, start.Add(90*time.Minute), slots[2].End)
}

func TestGenerateSlots_WindowShorterThanSlot(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, start.Add(10*time.Minute), 30*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := GenerateSlots(start, start, 30*time.Minute)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = GenerateSlots(start.Add(time.Hour), start, 30*time.Minute)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = GenerateSlots(start, start.Add(time.Hour), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGenerateSlots_SlotsAreContiguous(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, start.Add(3*time.Hour), 45*time.Minute)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}
