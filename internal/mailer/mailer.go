package mailer

import "log"

// Mailer é o colaborador externo de e-mail. A entrega real fica fora deste
// serviço; a implementação padrão só registra no log.
type Mailer interface {
	SendPasswordReset(to, token string) error
}

type LogMailer struct{}

func (LogMailer) SendPasswordReset(to, token string) error {
	log.Printf("password reset para %s (token %s)", to, token)
	return nil
}
