package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// FilterAll valor de bypass: o predicado correspondente fica inativo.
// String vazia é aceita como sinônimo (query param ausente).
const FilterAll = "all"

// Filter cadeia conjuntiva de predicados sobre vendas. Cada predicado é
// independentemente desligável; um registro passa somente se todos os
// predicados ativos passarem.
type Filter struct {
	Range         DateRange // zero → sem corte de data
	Make          string
	Model         string
	PaymentMethod string
	ProfitMin     *decimal.Decimal // piso de lucro (inclusive); nil → inativo
	ProfitMax     *decimal.Decimal // teto de lucro (inclusive); nil → inativo
}

func active(v string) bool { return v != "" && v != FilterAll }

// Match aplica a cadeia de predicados a uma venda. Datas não parseáveis
// falham o predicado de data (registro fora de qualquer período).
func (f Filter) Match(s entity.Sale) bool {
	if !f.Range.Start.IsZero() || !f.Range.End.IsZero() {
		t, ok := ParseDate(s.SoldDate)
		if !ok || !f.Range.Contains(t) {
			return false
		}
	}
	if active(f.Make) && s.Make != f.Make {
		return false
	}
	if active(f.Model) && s.Model != f.Model {
		return false
	}
	if active(f.PaymentMethod) && s.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.ProfitMin != nil || f.ProfitMax != nil {
		profit := RealProfit(s)
		if f.ProfitMin != nil && profit.LessThan(*f.ProfitMin) {
			return false
		}
		if f.ProfitMax != nil && profit.GreaterThan(*f.ProfitMax) {
			return false
		}
	}
	return true
}

// ApplyFilter retorna as vendas que passam no filtro. Função pura: nunca
// muta a entrada.
func ApplyFilter(sales []entity.Sale, f Filter) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// MakeOptions marcas distintas presentes nas vendas, ordenadas.
func MakeOptions(sales []entity.Sale) []string {
	return distinct(sales, func(s entity.Sale) string { return s.Make })
}

// ModelOptions modelos distintos, restritos à marca selecionada — o
// conjunto de opções de modelo é sempre relativo à marca corrente.
func ModelOptions(sales []entity.Sale, selectedMake string) []string {
	return distinct(sales, func(s entity.Sale) string {
		if active(selectedMake) && s.Make != selectedMake {
			return ""
		}
		return s.Model
	})
}

// PaymentOptions formas de pagamento distintas presentes nas vendas.
func PaymentOptions(sales []entity.Sale) []string {
	return distinct(sales, func(s entity.Sale) string { return s.PaymentMethod })
}

func distinct(sales []entity.Sale, key func(entity.Sale) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range sales {
		k := key(s)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
