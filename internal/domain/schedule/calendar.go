package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Dias da semana
// ===============================

type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// índice 0 = domingo .. 6 = sábado (mesma convenção de time.Weekday)
var weekdays = [7]DayOfWeek{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

func DayTag(date time.Time) DayOfWeek {
	return weekdays[int(date.Weekday())]
}

func IsDayOfWeek(s string) bool {
	for _, d := range weekdays {
		if DayOfWeek(s) == d {
			return true
		}
	}
	return false
}

// ===============================
// Aritmética HH:MM
// ===============================

// ToMinutes converte "HH:MM" em minutos desde a meia-noite.
// Entradas já chegam validadas pelo binding (^([01]\d|2[0-3]):[0-5]\d$).
func ToMinutes(hm string) int {
	var h, m int
	fmt.Sscanf(hm, "%d:%d", &h, &m)
	return h*60 + m
}

func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ===============================
// Sobreposição de intervalos
// ===============================

// Overlaps testa a interseção de [startA, endA) com [startB, endB), ambos em
// minutos desde a meia-noite. Horários encostados (endA == startB) não
// conflitam. As três cláusulas não equivalem a um teste meio-aberto simples
// nos casos degenerados de duração zero; manter exatamente assim.
func Overlaps(startA, endA, startB, endB int) bool {
	return (startA >= startB && startA < endB) ||
		(endA > startB && endA <= endB) ||
		(startA <= startB && endA >= endB)
}
