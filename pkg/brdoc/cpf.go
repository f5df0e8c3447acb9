package brdoc

import "strings"

var cpfSeparators = strings.NewReplacer(".", "", "-", "", " ", "")

// DigitsCPF remove pontos, hífens e espaços do CPF. Não valida.
func DigitsCPF(s string) string {
	return cpfSeparators.Replace(s)
}

// CheckCPF valida o CPF (com ou sem máscara) e devolve o motivo da rejeição.
// Aplica os dois dígitos verificadores módulo 11 (pesos 10..2 e 11..2) e rejeita
// sequências de 11 dígitos iguais, que passariam no cálculo.
func CheckCPF(s string) Reason {
	d := DigitsCPF(s)
	if d == "" {
		return Empty
	}
	if len(d) != 11 {
		return BadLength
	}
	if !onlyDigits(d) {
		return NonDigit
	}
	if strings.Count(d, d[:1]) == 11 {
		return RepeatedDigits
	}
	if d[9] != cpfCheckDigit(d[:9]) || d[10] != cpfCheckDigit(d[:10]) {
		return CheckDigit
	}
	return OK
}

// ValidCPF informa se o CPF é válido.
func ValidCPF(s string) bool {
	return CheckCPF(s) == OK
}

// FormatCPF devolve o CPF no formato XXX.XXX.XXX-XX quando há exatamente 11 dígitos;
// caso contrário devolve a entrada sem alterações. Não valida os dígitos verificadores.
func FormatCPF(s string) string {
	d := DigitsCPF(s)
	if len(d) != 11 || !onlyDigits(d) {
		return s
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// cpfCheckDigit calcula o dígito verificador para base de 9 ou 10 dígitos.
// O peso começa em len(base)+1 e decresce até 2.
func cpfCheckDigit(base string) byte {
	weight := len(base) + 1
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * (weight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}
