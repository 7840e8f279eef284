package analytics

import "github.com/shopspring/decimal"

// Metric métrica derivada exibida no gráfico ou nos cards.
type Metric string

const (
	MetricRevenue     Metric = "revenue"      // faturamento do bucket
	MetricProfit      Metric = "profit"       // lucro de veículos (sem OPEX)
	MetricTicket      Metric = "ticket"       // ticket médio por venda
	MetricROIStock    Metric = "roi_stock"    // retorno sobre capital em estoque
	MetricROIBusiness Metric = "roi_business" // retorno incluindo OPEX
)

// MetricKind tipo de valor da métrica, usado pelo formatador de eixo.
type MetricKind string

const (
	KindCurrency MetricKind = "currency"
	KindPercent  MetricKind = "percent"
)

var hundred = decimal.NewFromInt(100)

// metricKinds também serve de tabela de validade dos nomes de métrica.
var metricKinds = map[Metric]MetricKind{
	MetricRevenue:     KindCurrency,
	MetricProfit:      KindCurrency,
	MetricTicket:      KindCurrency,
	MetricROIStock:    KindPercent,
	MetricROIBusiness: KindPercent,
}

// Kind tipo declarado da métrica.
func (m Metric) Kind() MetricKind { return metricKinds[m] }

// ParseMetric valida um nome de métrica vindo da query string.
func ParseMetric(s string) (Metric, bool) {
	m := Metric(s)
	_, ok := metricKinds[m]
	return m, ok
}

// Compute deriva o valor da métrica a partir do acumulador de um bucket.
// Toda razão é protegida contra divisão por zero: denominador não
// positivo resulta em 0, nunca NaN/Inf.
func Compute(m Metric, b Bucket) decimal.Decimal {
	switch m {
	case MetricRevenue:
		return b.Revenue
	case MetricProfit:
		return b.Profit
	case MetricTicket:
		if b.Count <= 0 {
			return decimal.Zero
		}
		return b.Revenue.Div(decimal.NewFromInt(int64(b.Count)))
	case MetricROIStock:
		if !b.Invested.IsPositive() {
			return decimal.Zero
		}
		return b.Profit.Div(b.Invested).Mul(hundred)
	case MetricROIBusiness:
		base := b.Invested.Add(b.Opex)
		if !base.IsPositive() {
			return decimal.Zero
		}
		return b.Profit.Sub(b.Opex).Div(base).Mul(hundred)
	default:
		return decimal.Zero
	}
}

// AllPercent reporta se todas as métricas selecionadas são percentuais —
// sinal para o formatador de eixo trocar os ticks de moeda para %.
// Moeda e percentual nunca dividem um eixo numérico sem essa detecção.
func AllPercent(metrics []Metric) bool {
	if len(metrics) == 0 {
		return false
	}
	for _, m := range metrics {
		if m.Kind() != KindPercent {
			return false
		}
	}
	return true
}
