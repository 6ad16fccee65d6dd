package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayTag(t *testing.T) {
	// 2025-06-01 foi um domingo
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Sunday, DayTag(sunday))
	assert.Equal(t, Monday, DayTag(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, Saturday, DayTag(sunday.AddDate(0, 0, 6)))
}

func TestIsDayOfWeek(t *testing.T) {
	for _, d := range []string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"} {
		assert.True(t, IsDayOfWeek(d))
	}
	for _, d := range []string{"", "monday", "MONDAYS", "SEGUNDA"} {
		assert.False(t, IsDayOfWeek(d))
	}
}

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 540, ToMinutes("09:00"))
	assert.Equal(t, 570, ToMinutes("09:30"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:00", FormatMinutes(540))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "17:30", FormatMinutes(1050))
}

func TestToMinutesFormatRoundTrip(t *testing.T) {
	for _, hm := range []string{"00:00", "08:15", "12:00", "18:45", "23:30"} {
		assert.Equal(t, hm, FormatMinutes(ToMinutes(hm)))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{"identicos", 540, 570, 540, 570, true},
		{"A comeca dentro de B", 550, 600, 540, 570, true},
		{"A termina dentro de B", 500, 550, 540, 570, true},
		{"A contem B", 500, 600, 540, 570, true},
		{"B contem A", 550, 560, 540, 570, true},
		{"A antes de B", 480, 510, 540, 570, false},
		{"A depois de B", 600, 630, 540, 570, false},
		{"encostados, A termina onde B comeca", 510, 540, 540, 570, false},
		{"encostados, A comeca onde B termina", 570, 600, 540, 570, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.startA, tt.endA, tt.startB, tt.endB))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := [][4]int{
		{540, 570, 550, 600},
		{540, 570, 600, 630},
		{540, 600, 550, 560},
	}
	for _, p := range pairs {
		assert.Equal(t,
			Overlaps(p[0], p[1], p[2], p[3]),
			Overlaps(p[2], p[3], p[0], p[1]),
		)
	}
}
