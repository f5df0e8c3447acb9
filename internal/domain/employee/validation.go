package employee

import (
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/pkg/brdoc"
)

// Opções fechadas do formulário.
var (
	Directorates = []string{
		"Diretoria Financeira",
		"Diretoria de Recursos Humanos",
		"Diretoria Operacional",
		"Diretoria de Tecnologia",
		"Diretoria Administrativa",
	}
	BloodTypes      = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}
	MaritalStatuses = []string{"Solteiro(a)", "Casado(a)", "Divorciado(a)", "Viúvo(a)", "União Estável"}
	Answers         = []string{entity.AnswerNo, entity.AnswerYes}
)

// Limites de idade aceitos no cadastro.
const (
	MinAge = 18
	MaxAge = 100
)

// Formatos de data gravados na planilha.
const (
	BirthDateLayout = "02/01/2006"
	CreatedAtLayout = "02/01/2006 15:04:05"
)

// Mensagens exibidas ao usuário.
const (
	MsgNameRequired        = "Nome completo é obrigatório"
	MsgInvalidCPF          = "CPF inválido. Verifique se digitou os 11 dígitos corretamente (formato: XXX.XXX.XXX-XX)"
	MsgInvalidEmail        = "E-mail inválido. Use o formato: exemplo@dominio.com"
	MsgInvalidPhone        = "Telefone inválido. Use o formato: (XX) XXXXX-XXXX ou (XX) XXXX-XXXX"
	MsgAddressRequired     = "Endereço é obrigatório"
	MsgAgeRange            = "Idade deve estar entre 18 e 100 anos"
	MsgBirthDate           = "Data de nascimento inválida. Use o formato: DD/MM/AAAA"
	MsgDirectorateRequired = "Diretoria é obrigatória"
	MsgBloodTypeRequired   = "Tipo sanguíneo é obrigatório"
	MsgMaritalRequired     = "Estado civil é obrigatório"
	MsgAnswerInvalid       = "Respostas Sim/Não devem ser \"Sim\" ou \"Não\""
	MsgComorbidityRequired = "Descreva a comorbidade se respondeu sim"
	MsgHealthPlanRequired  = "Nome do plano é obrigatório se respondeu sim"
	MsgEmergency1Required  = "Contato de emergência 1 incompleto"
)

// ApplyDefaults preenche as respostas Sim/Não omitidas com "Não".
func ApplyDefaults(e *entity.Employee) {
	for _, p := range []*string{&e.HasComorbidity, &e.HasHealthPlan, &e.HasChildren} {
		if strings.TrimSpace(*p) == "" {
			*p = entity.AnswerNo
		}
	}
}

// ValidateCreate aplica todas as regras do formulário de cadastro e devolve um
// *domain.ValidationError com todas as mensagens, ou nil.
func ValidateCreate(e *entity.Employee) error {
	var msgs []string
	if strings.TrimSpace(e.FullName) == "" {
		msgs = append(msgs, MsgNameRequired)
	}
	if !brdoc.ValidCPF(e.CPF) {
		msgs = append(msgs, MsgInvalidCPF)
	}
	if !brdoc.ValidEmail(e.Email) {
		msgs = append(msgs, MsgInvalidEmail)
	}
	if !brdoc.ValidPhone(e.Phone) {
		msgs = append(msgs, MsgInvalidPhone)
	}
	if strings.TrimSpace(e.Address) == "" {
		msgs = append(msgs, MsgAddressRequired)
	}
	if e.Age < MinAge || e.Age > MaxAge {
		msgs = append(msgs, MsgAgeRange)
	}
	if _, err := time.Parse(BirthDateLayout, e.BirthDate); err != nil {
		msgs = append(msgs, MsgBirthDate)
	}
	if !slices.Contains(Directorates, e.Directorate) {
		msgs = append(msgs, MsgDirectorateRequired)
	}
	if !slices.Contains(BloodTypes, e.BloodType) {
		msgs = append(msgs, MsgBloodTypeRequired)
	}
	if !slices.Contains(MaritalStatuses, e.MaritalStatus) {
		msgs = append(msgs, MsgMaritalRequired)
	}
	if !slices.Contains(Answers, e.HasComorbidity) || !slices.Contains(Answers, e.HasHealthPlan) || !slices.Contains(Answers, e.HasChildren) {
		msgs = append(msgs, MsgAnswerInvalid)
	}
	if e.HasComorbidity == entity.AnswerYes && strings.TrimSpace(e.ComorbidityDescription) == "" {
		msgs = append(msgs, MsgComorbidityRequired)
	}
	if e.HasHealthPlan == entity.AnswerYes && strings.TrimSpace(e.HealthPlanName) == "" {
		msgs = append(msgs, MsgHealthPlanRequired)
	}
	if strings.TrimSpace(e.Emergency1Name) == "" || strings.TrimSpace(e.Emergency1Phone) == "" {
		msgs = append(msgs, MsgEmergency1Required)
	}
	return domain.NewValidationError(msgs)
}

// ValidateUpdate valida apenas CPF e e-mail; os demais campos da edição passam sem checagem.
// A diferença em relação a ValidateCreate é conhecida e aguarda decisão de produto.
func ValidateUpdate(e *entity.Employee) error {
	var msgs []string
	if !brdoc.ValidCPF(e.CPF) {
		msgs = append(msgs, MsgInvalidCPF)
	}
	if !brdoc.ValidEmail(e.Email) {
		msgs = append(msgs, MsgInvalidEmail)
	}
	return domain.NewValidationError(msgs)
}

// NormalizeCreate formata CPF e telefones e limpa os campos condicionais que não
// se aplicam às respostas dadas. Deve ser chamada depois de ValidateCreate.
func NormalizeCreate(e *entity.Employee) {
	e.FullName = strings.TrimSpace(e.FullName)
	e.CPF = brdoc.FormatCPF(e.CPF)
	e.Phone = brdoc.FormatPhone(e.Phone)
	e.Emergency1Phone = brdoc.FormatPhone(e.Emergency1Phone)
	e.Emergency2Phone = brdoc.FormatPhone(e.Emergency2Phone)
	if e.HasComorbidity != entity.AnswerYes {
		e.ComorbidityDescription = ""
	}
	if e.HasHealthPlan != entity.AnswerYes {
		e.HealthPlanName = ""
	}
	if !HasPartner(e.MaritalStatus) {
		e.SpouseName = ""
		e.SpouseAge = 0
	} else if e.SpouseAge < 0 {
		e.SpouseAge = 0
	}
	if e.HasChildren == entity.AnswerYes {
		if e.ChildrenCount < 1 {
			e.ChildrenCount = 1
		}
	} else {
		e.ChildrenCount = 0
	}
}

// HasPartner informa se o estado civil admite cônjuge ou companheiro(a).
func HasPartner(maritalStatus string) bool {
	return maritalStatus == "Casado(a)" || maritalStatus == "União Estável"
}
