// Package brdoc valida e formata identificadores brasileiros (CPF, telefone, e-mail).
//
// As funções Valid* são totais: nunca entram em pânico e devolvem apenas um bool.
// As funções Check* expõem o motivo da rejeição para quem precisa de mensagens mais ricas.
package brdoc

// Reason é o motivo pelo qual um valor foi aceito ou rejeitado.
type Reason int

const (
	OK Reason = iota
	Empty
	BadLength
	NonDigit
	RepeatedDigits
	CheckDigit
	AreaCode
	MobilePrefix
	Pattern
)

var reasonNames = map[Reason]string{
	OK:             "ok",
	Empty:          "empty",
	BadLength:      "bad_length",
	NonDigit:       "non_digit",
	RepeatedDigits: "repeated_digits",
	CheckDigit:     "check_digit",
	AreaCode:       "area_code",
	MobilePrefix:   "mobile_prefix",
	Pattern:        "pattern",
}

var reasonMessages = map[Reason]string{
	OK:             "valor válido",
	Empty:          "valor vazio",
	BadLength:      "quantidade de dígitos incorreta",
	NonDigit:       "contém caracteres que não são dígitos",
	RepeatedDigits: "todos os dígitos são iguais",
	CheckDigit:     "dígito verificador não confere",
	AreaCode:       "DDD fora do intervalo 11 a 99",
	MobilePrefix:   "celular deve começar com 9 após o DDD",
	Pattern:        "formato inválido",
}

// String devolve o código estável do motivo (útil em logs e respostas JSON).
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Message devolve uma descrição legível em português.
func (r Reason) Message() string {
	if s, ok := reasonMessages[r]; ok {
		return s
	}
	return "motivo desconhecido"
}

func onlyDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
