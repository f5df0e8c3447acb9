package employee

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/pkg/brdoc"
)

var numericColumns = map[int]bool{
	domainemp.ColAge:           true,
	domainemp.ColSpouseAge:     true,
	domainemp.ColChildrenCount: true,
}

var dateColumns = map[int]string{
	domainemp.ColCreatedAt: domainemp.CreatedAtLayout,
	domainemp.ColBirthDate: domainemp.BirthDateLayout,
}

// fold remove acentos e caixa: "José" e "jose" comparam iguais.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// filter aplica a busca livre (nome, e-mail, dígitos do CPF) e o filtro de diretoria.
func filter(list []*entity.Employee, q dto.EmployeeQuery) []*entity.Employee {
	term := fold(q.Q)
	digits := brdoc.DigitsCPF(q.Q)
	searchDigits := digits != "" && strings.Trim(digits, "0123456789") == ""
	out := make([]*entity.Employee, 0, len(list))
	for _, e := range list {
		if q.Directorate != "" && e.Directorate != q.Directorate {
			continue
		}
		if term != "" {
			hit := strings.Contains(fold(e.FullName), term) || strings.Contains(fold(e.Email), term)
			if !hit && searchDigits {
				hit = strings.Contains(brdoc.DigitsCPF(e.CPF), digits)
			}
			if !hit {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// sortView ordena pela coluna indicada. Sem SortBy mantém a ordem da planilha.
func sortView(list []*entity.Employee, sortBy, order string) error {
	if sortBy == "" {
		if strings.EqualFold(order, "desc") {
			for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
				list[i], list[j] = list[j], list[i]
			}
		}
		return nil
	}
	col, ok := domainemp.IndexOf(sortBy)
	if !ok {
		return domain.NewValidationError([]string{"Coluna de ordenação desconhecida: " + sortBy})
	}
	desc := strings.EqualFold(order, "desc")
	less := lessFor(col)
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
	return nil
}

func lessFor(col int) func(a, b *entity.Employee) bool {
	if numericColumns[col] {
		return func(a, b *entity.Employee) bool {
			return numericValue(a, col) < numericValue(b, col)
		}
	}
	if layout, ok := dateColumns[col]; ok {
		return func(a, b *entity.Employee) bool {
			return parseDate(layout, domainemp.Value(a, col)).Before(parseDate(layout, domainemp.Value(b, col)))
		}
	}
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	return func(a, b *entity.Employee) bool {
		return c.CompareString(domainemp.Value(a, col), domainemp.Value(b, col)) < 0
	}
}

func numericValue(e *entity.Employee, col int) int {
	switch col {
	case domainemp.ColAge:
		return e.Age
	case domainemp.ColSpouseAge:
		return e.SpouseAge
	case domainemp.ColChildrenCount:
		return e.ChildrenCount
	}
	return 0
}

// parseDate devolve o instante zero para datas ilegíveis, que ficam no início da ordenação.
func parseDate(layout, v string) time.Time {
	t, err := time.Parse(layout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}
