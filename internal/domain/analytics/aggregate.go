package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// Bucket uma fatia de tempo (dia ou mês) da série, com o acumulador de
// todas as grandezas base. Buckets não tocados por nenhum registro ficam
// zerados — nunca são omitidos da série.
type Bucket struct {
	Label    string
	Revenue  decimal.Decimal
	Profit   decimal.Decimal
	Invested decimal.Decimal
	Opex     decimal.Decimal
	Count    int
}

func zeroBucket(label string) Bucket {
	return Bucket{
		Label:    label,
		Revenue:  decimal.Zero,
		Profit:   decimal.Zero,
		Invested: decimal.Zero,
		Opex:     decimal.Zero,
	}
}

// RealProfit lucro real de uma venda: receita menos custo total (compra +
// despesas itemizadas), com duas guardas:
//
//  1. receita <= 0 → lucro 0 (venda sem valor registrado não pontua);
//  2. receita < preço de compra → lucro travado em min(lucro, 0).
//
// A segunda guarda bloqueia o artefato de cancelamento de sinal em que
// despesas itemizadas negativas maiores que a receita fariam uma venda
// abaixo do custo de compra aparecer com lucro positivo espúrio.
func RealProfit(s entity.Sale) decimal.Decimal {
	gross := s.SoldPrice
	profit := gross.Sub(s.Invested())
	if !gross.IsPositive() {
		return decimal.Zero
	}
	if gross.LessThan(s.PurchasePrice) && profit.IsPositive() {
		return decimal.Zero
	}
	return profit
}

// Aggregate dobra as vendas filtradas e as despesas operacionais do
// intervalo nos buckets do bucketer. Fold puro e associativo: a ordem dos
// registros não altera o resultado.
//
// Registros cuja chave não pertence ao conjunto gerado (data fora do
// intervalo ou não parseável) são descartados em silêncio.
func Aggregate(sales []entity.Sale, expenses []entity.OperatingExpense, b Bucketer) []Bucket {
	keys := b.Keys()
	buckets := make([]Bucket, len(keys))
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		buckets[i] = zeroBucket(k)
		index[k] = i
	}

	for _, s := range sales {
		t, ok := ParseDate(s.SoldDate)
		if !ok {
			continue
		}
		i, ok := index[b.Key(t)]
		if !ok {
			continue
		}
		buckets[i].Revenue = buckets[i].Revenue.Add(s.SoldPrice)
		buckets[i].Profit = buckets[i].Profit.Add(RealProfit(s))
		buckets[i].Invested = buckets[i].Invested.Add(s.Invested())
		buckets[i].Count++
	}

	for _, e := range expenses {
		t, ok := ParseDate(e.Date)
		// Despesas não passam pelo FilterPipeline: o corte de intervalo é
		// feito aqui para que um rótulo sem ano não capture outro ano.
		if !ok || !b.Range.Contains(t) {
			continue
		}
		i, ok := index[b.Key(t)]
		if !ok {
			continue
		}
		buckets[i].Opex = buckets[i].Opex.Add(e.Amount)
	}

	return buckets
}

// TotalBucket dobra o conjunto inteiro em um único acumulador, sem
// bucketing — base dos KPIs escalares dos cards de resumo.
func TotalBucket(sales []entity.Sale, expenses []entity.OperatingExpense, r DateRange) Bucket {
	total := zeroBucket("total")
	for _, s := range sales {
		total.Revenue = total.Revenue.Add(s.SoldPrice)
		total.Profit = total.Profit.Add(RealProfit(s))
		total.Invested = total.Invested.Add(s.Invested())
		total.Count++
	}
	for _, e := range expenses {
		t, ok := ParseDate(e.Date)
		if !ok || !r.Contains(t) {
			continue
		}
		total.Opex = total.Opex.Add(e.Amount)
	}
	return total
}
