package httperr

import "errors"

// Códigos de negócio do motor de agenda. Cada um vira uma mensagem própria
// para o cliente; nenhum é falha de sistema.
const (
	CodePastDate           = "past_date"
	CodeServiceUnavailable = "service_unavailable"
	CodeBarberUnavailable  = "barber_unavailable"
	CodeSlotConflict       = "slot_conflict"
	CodeDuplicateException = "duplicate_exception"
	CodeInvalidTransition  = "invalid_transition"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AnyBusiness extrai o código de negócio, se houver.
func AnyBusiness(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
