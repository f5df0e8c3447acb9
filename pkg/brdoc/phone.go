package brdoc

import "strings"

var phoneSeparators = strings.NewReplacer(
	"(", "", ")", "", "{", "", "}", "",
	".", "", "+", "", "-", "",
	" ", "", "\t", "", "\n", "", "\r", "",
)

// DigitsPhone remove separadores e o código do país 55 (quando sobram mais de 11 caracteres).
func DigitsPhone(s string) string {
	d := phoneSeparators.Replace(s)
	if strings.HasPrefix(d, "55") && len(d) > 11 {
		d = d[2:]
	}
	return d
}

// CheckPhone valida telefone fixo (DDD + 8 dígitos) ou celular (DDD + 9 dígitos iniciando em 9).
func CheckPhone(s string) Reason {
	d := DigitsPhone(s)
	if d == "" {
		return Empty
	}
	if !onlyDigits(d) {
		return NonDigit
	}
	if len(d) != 10 && len(d) != 11 {
		return BadLength
	}
	ddd := int(d[0]-'0')*10 + int(d[1]-'0')
	if ddd < 11 || ddd > 99 {
		return AreaCode
	}
	if len(d) == 11 && d[2] != '9' {
		return MobilePrefix
	}
	return OK
}

// ValidPhone informa se o telefone é válido.
func ValidPhone(s string) bool {
	return CheckPhone(s) == OK
}

// FormatPhone devolve (XX) XXXX-XXXX ou (XX) XXXXX-XXXX; qualquer outro formato volta sem alterações.
func FormatPhone(s string) string {
	d := DigitsPhone(s)
	if !onlyDigits(d) {
		return s
	}
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return s
}
