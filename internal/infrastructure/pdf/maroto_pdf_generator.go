// Package pdf gera a ficha cadastral do funcionário em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: Ficha Cadastral + Nome  │  Cadastro / Emissão    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DADOS PESSOAIS: CPF, nascimento, idade, contato, endereço  │
//	│  SAÚDE: comorbidade, tipo sanguíneo, plano de saúde         │
//	│  FAMÍLIA: estado civil, cônjuge, filhos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Contato de emergência | Telefone | Parentesco      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: aviso de dados pessoais (LGPD)                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
)

var _ employee.SheetPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Gerador ───────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa employee.SheetPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator constrói o gerador. author vai para os metadados do PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateEmployeeSheet gera a ficha e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateEmployeeSheet(e *entity.Employee, generatedAt time.Time) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("pdf: funcionário nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha Cadastral - "+e.FullName, true).
		WithAuthor(g.author, true).
		WithCreationDate(generatedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(e, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("DADOS PESSOAIS"))
	m.AddRows(
		fieldRow(field{"CPF", e.CPF}, field{"Data de Nascimento", e.BirthDate}, field{"Idade", itoa(e.Age)}),
		fieldRow(field{"E-mail", e.Email}, field{"Telefone", e.Phone}, field{"Diretoria", e.Directorate}),
		fieldRow(field{"Endereço", e.Address}),
	)

	m.AddRows(sectionTitle("SAÚDE"))
	m.AddRows(
		fieldRow(field{"Possui Comorbidade", e.HasComorbidity}, field{"Descrição", e.ComorbidityDescription}),
		fieldRow(field{"Tipo Sanguíneo", e.BloodType}, field{"Plano de Saúde", e.HasHealthPlan}, field{"Qual Plano", e.HealthPlanName}),
	)

	m.AddRows(sectionTitle("FAMÍLIA"))
	m.AddRows(
		fieldRow(field{"Estado Civil", e.MaritalStatus}, field{"Cônjuge", e.SpouseName}, field{"Idade do Cônjuge", itoa(e.SpouseAge)}),
		fieldRow(field{"Possui Filhos", e.HasChildren}, field{"Quantidade de Filhos", itoa(e.ChildrenCount)}),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(emergencyHeaderRow())
	m.AddRows(
		emergencyRow(e.Emergency1Name, e.Emergency1Phone, e.Emergency1Relationship),
		emergencyRow(e.Emergency2Name, e.Emergency2Phone, e.Emergency2Relationship),
	)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título e nome (esq.), data de cadastro e emissão (dir.).
func headerRow(e *entity.Employee, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("FICHA CADASTRAL DO FUNCIONÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(e.FullName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Cadastro: "+nonEmpty(e.CreatedAt, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Emissão: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
		}),
	))
}

type field struct {
	label string
	value string
}

// fieldRow distribui os campos igualmente nas 12 colunas da grade.
func fieldRow(fields ...field) core.Row {
	size := 12 / len(fields)
	cols := make([]core.Col, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, col.New(size).Add(
			text.New(f.label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(nonEmpty(f.value, "—"), props.Text{Size: 9, Top: 5}),
		))
	}
	return row.New(11).Add(cols...)
}

// emergencyHeaderRow: cabeçalho da tabela de contatos com texto branco.
func emergencyHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorWhite, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("Contato de Emergência", 6),
		h("Telefone", 3),
		h("Parentesco", 3),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func emergencyRow(name, phone, relationship string) core.Row {
	c := func(v string, size int) core.Col {
		return col.New(size).Add(text.New(nonEmpty(v, "—"), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		}))
	}
	return row.New(7).Add(c(name, 6), c(phone, 3), c(relationship, 3))
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento com dados pessoais e sensíveis (Lei 13.709/2018 - LGPD). "+
				"Uso restrito ao setor de Recursos Humanos.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// itoa deixa zero em branco: idade e quantidade ausentes aparecem como "—".
func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
