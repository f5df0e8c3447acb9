// Package employee concentra as regras do cadastro de funcionários: o esquema único de
// colunas da planilha, a localização de registros pela chave natural e a validação
// dos formulários de criação e edição.
package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
)

// Column descreve uma coluna da planilha. A ordem de Schema é a ordem física das colunas.
type Column struct {
	Key    string
	Header string
	get    func(e *entity.Employee) string
	set    func(e *entity.Employee, v string)
}

// Índices das colunas em Schema (base zero).
const (
	ColCreatedAt = iota
	ColFullName
	ColCPF
	ColAddress
	ColEmail
	ColPhone
	ColAge
	ColBirthDate
	ColDirectorate
	ColHasComorbidity
	ColComorbidityDescription
	ColBloodType
	ColHasHealthPlan
	ColHealthPlanName
	ColMaritalStatus
	ColSpouseName
	ColSpouseAge
	ColHasChildren
	ColChildrenCount
	ColEmergency1Name
	ColEmergency1Phone
	ColEmergency1Relationship
	ColEmergency2Name
	ColEmergency2Phone
	ColEmergency2Relationship
	ColumnCount
)

// Schema é a única definição da ordem de colunas: usada para escrever o cabeçalho,
// serializar linhas na criação e edição, ler linhas e exportar.
var Schema = [ColumnCount]Column{
	ColCreatedAt: textColumn("created_at", "Data/Hora Cadastro",
		func(e *entity.Employee) *string { return &e.CreatedAt }),
	ColFullName: textColumn("full_name", "Nome Completo",
		func(e *entity.Employee) *string { return &e.FullName }),
	ColCPF: textColumn("cpf", "CPF",
		func(e *entity.Employee) *string { return &e.CPF }),
	ColAddress: textColumn("address", "Endereço",
		func(e *entity.Employee) *string { return &e.Address }),
	ColEmail: textColumn("email", "E-mail",
		func(e *entity.Employee) *string { return &e.Email }),
	ColPhone: textColumn("phone", "Telefone",
		func(e *entity.Employee) *string { return &e.Phone }),
	ColAge: intColumn("age", "Idade",
		func(e *entity.Employee) *int { return &e.Age }),
	ColBirthDate: textColumn("birth_date", "Data de Nascimento",
		func(e *entity.Employee) *string { return &e.BirthDate }),
	ColDirectorate: textColumn("directorate", "Diretoria",
		func(e *entity.Employee) *string { return &e.Directorate }),
	ColHasComorbidity: textColumn("has_comorbidity", "Possui Comorbidade",
		func(e *entity.Employee) *string { return &e.HasComorbidity }),
	ColComorbidityDescription: textColumn("comorbidity_description", "Descrição Comorbidade",
		func(e *entity.Employee) *string { return &e.ComorbidityDescription }),
	ColBloodType: textColumn("blood_type", "Tipo Sanguíneo",
		func(e *entity.Employee) *string { return &e.BloodType }),
	ColHasHealthPlan: textColumn("has_health_plan", "Possui Plano de Saúde",
		func(e *entity.Employee) *string { return &e.HasHealthPlan }),
	ColHealthPlanName: textColumn("health_plan_name", "Nome do Plano",
		func(e *entity.Employee) *string { return &e.HealthPlanName }),
	ColMaritalStatus: textColumn("marital_status", "Estado Civil",
		func(e *entity.Employee) *string { return &e.MaritalStatus }),
	ColSpouseName: textColumn("spouse_name", "Nome Cônjuge/Companheiro(a)",
		func(e *entity.Employee) *string { return &e.SpouseName }),
	ColSpouseAge: intColumn("spouse_age", "Idade Cônjuge/Companheiro(a)",
		func(e *entity.Employee) *int { return &e.SpouseAge }),
	ColHasChildren: textColumn("has_children", "Possui Filhos",
		func(e *entity.Employee) *string { return &e.HasChildren }),
	ColChildrenCount: intColumn("children_count", "Quantidade de Filhos",
		func(e *entity.Employee) *int { return &e.ChildrenCount }),
	ColEmergency1Name: textColumn("emergency1_name", "Contato Emergência 1 - Nome",
		func(e *entity.Employee) *string { return &e.Emergency1Name }),
	ColEmergency1Phone: textColumn("emergency1_phone", "Contato Emergência 1 - Telefone",
		func(e *entity.Employee) *string { return &e.Emergency1Phone }),
	ColEmergency1Relationship: textColumn("emergency1_relationship", "Contato Emergência 1 - Parentesco",
		func(e *entity.Employee) *string { return &e.Emergency1Relationship }),
	ColEmergency2Name: textColumn("emergency2_name", "Contato Emergência 2 - Nome",
		func(e *entity.Employee) *string { return &e.Emergency2Name }),
	ColEmergency2Phone: textColumn("emergency2_phone", "Contato Emergência 2 - Telefone",
		func(e *entity.Employee) *string { return &e.Emergency2Phone }),
	ColEmergency2Relationship: textColumn("emergency2_relationship", "Contato Emergência 2 - Parentesco",
		func(e *entity.Employee) *string { return &e.Emergency2Relationship }),
}

func textColumn(key, header string, field func(*entity.Employee) *string) Column {
	return Column{
		Key:    key,
		Header: header,
		get:    func(e *entity.Employee) string { return *field(e) },
		set:    func(e *entity.Employee, v string) { *field(e) = v },
	}
}

// intColumn aceita células vazias ou não numéricas como zero.
func intColumn(key, header string, field func(*entity.Employee) *int) Column {
	return Column{
		Key:    key,
		Header: header,
		get:    func(e *entity.Employee) string { return strconv.Itoa(*field(e)) },
		set: func(e *entity.Employee, v string) {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				n = 0
			}
			*field(e) = n
		},
	}
}

// Headers devolve os nomes de exibição na ordem física.
func Headers() []string {
	out := make([]string, ColumnCount)
	for i, c := range Schema {
		out[i] = c.Header
	}
	return out
}

// Keys devolve as chaves internas na ordem física.
func Keys() []string {
	out := make([]string, ColumnCount)
	for i, c := range Schema {
		out[i] = c.Key
	}
	return out
}

// IndexOf devolve o índice da coluna pela chave interna.
func IndexOf(key string) (int, bool) {
	for i, c := range Schema {
		if c.Key == key {
			return i, true
		}
	}
	return 0, false
}

// ToRow serializa o funcionário na ordem do esquema.
func ToRow(e *entity.Employee) []string {
	row := make([]string, ColumnCount)
	for i, c := range Schema {
		row[i] = c.get(e)
	}
	return row
}

// FromRow lê uma linha da planilha. Linhas curtas (células finais vazias omitidas
// pela API) são completadas com vazio; colunas extras são ignoradas.
func FromRow(row []string) *entity.Employee {
	e := &entity.Employee{}
	for i, c := range Schema {
		c.set(e, Cell(row, i))
	}
	return e
}

// Value devolve o valor serializado de uma coluna.
func Value(e *entity.Employee, col int) string {
	if col < 0 || col >= ColumnCount {
		return ""
	}
	return Schema[col].get(e)
}

// Cell devolve a célula i da linha ou "" quando a linha é mais curta.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// VerifyHeader confere o cabeçalho lido da planilha contra o esquema.
func VerifyHeader(header []string) error {
	for i, c := range Schema {
		got := strings.TrimSpace(Cell(header, i))
		if got != c.Header {
			return fmt.Errorf("%w: coluna %d esperada %q, encontrada %q", domain.ErrSchemaMismatch, i+1, c.Header, got)
		}
	}
	return nil
}
