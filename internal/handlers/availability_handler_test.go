package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/models"
)

func weeklyInput(day string) *RuleInput {
	return &RuleInput{
		BarberID:       1,
		RecurrenceType: domain.RecurrenceWeekly,
		DayOfWeek:      day,
		StartTime:      "09:00",
		EndTime:        "18:00",
	}
}

func TestValidateRuleWeeklyDayOfWeek(t *testing.T) {
	_, ok := validateRule(weeklyInput("MONDAY"))
	assert.True(t, ok)

	// valores fora de SUNDAY..SATURDAY nunca casariam com nenhuma data
	for _, day := range []string{"", "MONDAYS", "monday", "SEGUNDA"} {
		_, ok := validateRule(weeklyInput(day))
		assert.False(t, ok, "day_of_week %q deveria ser rejeitado", day)
	}
}

func TestValidateRuleTimes(t *testing.T) {
	in := weeklyInput("MONDAY")
	in.StartTime = "18:00"
	in.EndTime = "09:00"
	_, ok := validateRule(in)
	assert.False(t, ok)

	in = weeklyInput("MONDAY")
	in.StartTime = "9h00"
	_, ok = validateRule(in)
	assert.False(t, ok)
}

func TestValidateRuleMonthly(t *testing.T) {
	in := &RuleInput{
		BarberID:       1,
		RecurrenceType: domain.RecurrenceMonthly,
		DayOfMonth:     15,
		StartTime:      "09:00",
		EndTime:        "12:00",
	}
	_, ok := validateRule(in)
	assert.True(t, ok)

	in.DayOfMonth = 0
	_, ok = validateRule(in)
	assert.False(t, ok)

	in.DayOfMonth = 32
	_, ok = validateRule(in)
	assert.False(t, ok)
}

func TestValidateException(t *testing.T) {
	_, ok := validateException(&ExceptionInput{
		BarberID: 1,
		Date:     "2025-06-02",
		Type:     domain.ExceptionBlocked,
	})
	assert.True(t, ok)

	// SPECIAL exige horários válidos
	_, ok = validateException(&ExceptionInput{
		BarberID: 1,
		Date:     "2025-06-02",
		Type:     domain.ExceptionSpecial,
	})
	assert.False(t, ok)

	_, ok = validateException(&ExceptionInput{
		BarberID:  1,
		Date:      "2025-06-02",
		Type:      domain.ExceptionSpecial,
		StartTime: "13:00",
		EndTime:   "17:00",
	})
	assert.True(t, ok)
}

func TestApplyRuleInputPreservesRow(t *testing.T) {
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	rule := models.AvailabilityRule{
		ID:             7,
		BarberID:       1,
		RecurrenceType: domain.RecurrenceWeekly,
		DayOfWeek:      "MONDAY",
		StartTime:      "09:00",
		EndTime:        "18:00",
		IsActive:       true,
		CreatedAt:      created,
	}

	applyRuleInput(&rule, weeklyInput("FRIDAY"))

	assert.Equal(t, uint(7), rule.ID)
	assert.Equal(t, created, rule.CreatedAt)
	assert.Equal(t, "FRIDAY", rule.DayOfWeek)
	// payload sem is_active não desativa a regra existente
	assert.True(t, rule.IsActive)
}

func TestRuleFromInputDefaultsActive(t *testing.T) {
	rule := ruleFromInput(weeklyInput("MONDAY"))
	assert.True(t, rule.IsActive)

	off := false
	in := weeklyInput("MONDAY")
	in.IsActive = &off
	rule = ruleFromInput(in)
	assert.False(t, rule.IsActive)
}
