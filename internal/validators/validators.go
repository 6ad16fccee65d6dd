package validators

import (
	"net"
	"regexp"
	"strings"
)

var (
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsTime valida "HH:MM" 24h.
func IsTime(s string) bool {
	return timeRe.MatchString(s)
}

// IsDate valida "YYYY-MM-DD" (forma; o parse em timezone confirma o valor).
func IsDate(s string) bool {
	return dateRe.MatchString(s)
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
