package brdoc

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CheckEmail valida apenas o formato local@dominio.tld. Não consulta DNS.
func CheckEmail(s string) Reason {
	if s == "" {
		return Empty
	}
	if !emailPattern.MatchString(s) {
		return Pattern
	}
	return OK
}

// ValidEmail informa se o e-mail tem formato válido.
func ValidEmail(s string) bool {
	return CheckEmail(s) == OK
}
