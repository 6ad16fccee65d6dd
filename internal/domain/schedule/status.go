package schedule

import "github.com/edbarbearia/barbershop-api/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Transições permitidas. CANCELLED e COMPLETED são terminais.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition valida a mudança de status. Mudanças de status não refazem a
// checagem de conflito de horário; só a criação precisa dela.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// Blocks informa se um agendamento neste status ocupa a agenda para fins de
// conflito. Cancelados e concluídos liberam o horário.
func Blocks(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
