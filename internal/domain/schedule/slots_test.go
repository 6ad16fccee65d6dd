package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlotsFullDay(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "18:00"}

	slots := GenerateSlots(interval, 30, nil)

	// 09:00 até 17:30, de meia em meia hora
	assert.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])
}

func TestGenerateSlotsExcludesBookedInterval(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "18:00"}
	busy := []BookedInterval{
		{Start: ToMinutes("10:00"), End: ToMinutes("10:30")},
	}

	slots := GenerateSlots(interval, 30, busy)

	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
	assert.Len(t, slots, 17)
}

func TestGenerateSlotsLongServiceMustFit(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "18:00"}

	slots := GenerateSlots(interval, 90, nil)

	// último início possível é 16:30 (16:30 + 90min = 18:00)
	assert.Equal(t, "16:30", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:00")
	assert.NotContains(t, slots, "17:30")
}

func TestGenerateSlotsLongServiceOverlapsBooking(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "12:00"}
	busy := []BookedInterval{
		{Start: ToMinutes("10:00"), End: ToMinutes("10:30")},
	}

	slots := GenerateSlots(interval, 60, busy)

	// 09:30+60 invade o agendamento das 10:00
	assert.Equal(t, []string{"09:00", "10:30", "11:00"}, slots)
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	slots := GenerateSlots(ClosedDay, 30, nil)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlotsIntervalShorterThanService(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "09:20"}

	slots := GenerateSlots(interval, 30, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsBackToBackBookings(t *testing.T) {
	interval := OpenInterval{StartTime: "09:00", EndTime: "11:00"}
	busy := []BookedInterval{
		{Start: ToMinutes("09:00"), End: ToMinutes("09:30")},
		{Start: ToMinutes("09:30"), End: ToMinutes("10:00")},
	}

	slots := GenerateSlots(interval, 30, busy)
	assert.Equal(t, []string{"10:00", "10:30"}, slots)
}

func TestGenerateSlotsAreSortedAndUnique(t *testing.T) {
	interval := OpenInterval{StartTime: "08:00", EndTime: "20:00"}
	busy := []BookedInterval{
		{Start: ToMinutes("12:00"), End: ToMinutes("13:00")},
	}

	slots := GenerateSlots(interval, 45, busy)

	seen := map[string]bool{}
	prev := -1
	for _, s := range slots {
		cur := ToMinutes(s)
		assert.Greater(t, cur, prev)
		assert.False(t, seen[s])
		seen[s] = true
		prev = cur
	}
}
