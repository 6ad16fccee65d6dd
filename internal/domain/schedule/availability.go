package schedule

import (
	"time"

	"github.com/edbarbearia/barbershop-api/internal/models"
)

// ===============================
// Intervalo aberto do dia
// ===============================

// OpenInterval descreve quando o barbeiro atende numa data, ou Closed.
type OpenInterval struct {
	StartTime string
	EndTime   string
	Closed    bool
}

var ClosedDay = OpenInterval{Closed: true}

// ===============================
// Recorrência
// ===============================

const (
	RecurrenceDaily   = "DAILY"
	RecurrenceWeekly  = "WEEKLY"
	RecurrenceMonthly = "MONTHLY"
)

const (
	ExceptionBlocked = "BLOCKED"
	ExceptionSpecial = "SPECIAL"
)

// ===============================
// Resolver
// ===============================

// Resolve funde regras recorrentes e exceções do barbeiro no intervalo
// efetivo da data. Exceção vence tudo: BLOCKED fecha o dia, SPECIAL troca o
// horário. Sem exceção, vale a regra ativa que casa com a data, preferindo
// regra específica do serviço sobre regra genérica. Closed é resultado
// normal, nunca erro.
func Resolve(
	rules []models.AvailabilityRule,
	exceptions []models.AvailabilityException,
	date time.Time,
	serviceID uint,
) OpenInterval {

	for _, ex := range exceptions {
		if !sameDate(ex.Date, date) {
			continue
		}
		if ex.Type == ExceptionBlocked {
			return ClosedDay
		}
		if ex.Type == ExceptionSpecial {
			return OpenInterval{StartTime: ex.StartTime, EndTime: ex.EndTime}
		}
	}

	var best *models.AvailabilityRule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive || !ruleMatchesDate(r, date) {
			continue
		}
		if r.ServiceID != nil && *r.ServiceID != serviceID {
			continue
		}
		if best == nil || betterRule(r, best, serviceID) {
			best = r
		}
	}

	if best == nil {
		return ClosedDay
	}
	return OpenInterval{StartTime: best.StartTime, EndTime: best.EndTime}
}

func ruleMatchesDate(r *models.AvailabilityRule, date time.Time) bool {
	switch r.RecurrenceType {
	case RecurrenceWeekly:
		return DayOfWeek(r.DayOfWeek) == DayTag(date)
	case RecurrenceDaily:
		return true
	case RecurrenceMonthly:
		return r.DayOfMonth == date.Day()
	}
	return false
}

// Desempate: específica do serviço > genérica; depois WEEKLY > DAILY >
// MONTHLY; depois menor horário de início.
func betterRule(a, b *models.AvailabilityRule, serviceID uint) bool {
	aSpecific := a.ServiceID != nil && *a.ServiceID == serviceID
	bSpecific := b.ServiceID != nil && *b.ServiceID == serviceID
	if aSpecific != bSpecific {
		return aSpecific
	}

	ra, rb := recurrenceRank(a.RecurrenceType), recurrenceRank(b.RecurrenceType)
	if ra != rb {
		return ra < rb
	}

	return ToMinutes(a.StartTime) < ToMinutes(b.StartTime)
}

func recurrenceRank(t string) int {
	switch t {
	case RecurrenceWeekly:
		return 0
	case RecurrenceDaily:
		return 1
	default:
		return 2
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
