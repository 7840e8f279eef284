package analytics

import "github.com/shopspring/decimal"

// Row uma linha da série final, na ordem cronológica dos buckets. É a
// única saída consumida pela camada de gráfico.
type Row struct {
	Label    string
	Values   map[Metric]decimal.Decimal
	Previous map[Metric]decimal.Decimal // nil quando a comparação está desligada
}

// Assemble monta as linhas da série: uma por bucket corrente, com o valor
// de cada métrica selecionada e, se prev não for nil, o valor alinhado
// posicionalmente do período anterior (bucket i sobre bucket i).
func Assemble(cur, prev []Bucket, metrics []Metric) []Row {
	rows := make([]Row, len(cur))
	for i, b := range cur {
		row := Row{
			Label:  b.Label,
			Values: make(map[Metric]decimal.Decimal, len(metrics)),
		}
		for _, m := range metrics {
			row.Values[m] = Compute(m, b)
		}
		if prev != nil && i < len(prev) {
			row.Previous = make(map[Metric]decimal.Decimal, len(metrics))
			for _, m := range metrics {
				row.Previous[m] = Compute(m, prev[i])
			}
		}
		rows[i] = row
	}
	return rows
}

// KPIs valores escalares dos cards de resumo: somas sobre o conjunto
// filtrado inteiro, sem bucketing. Ticket e ROIs derivados do total, com
// as mesmas guardas de divisão das métricas por bucket.
type KPIs struct {
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
	Ticket      decimal.Decimal
	ROIStock    decimal.Decimal
	ROIBusiness decimal.Decimal
	Opex        decimal.Decimal
	Count       int
}

// ComputeKPIs calcula os KPIs a partir do acumulador total do período.
func ComputeKPIs(total Bucket) KPIs {
	return KPIs{
		Revenue:     total.Revenue,
		Profit:      total.Profit,
		Ticket:      Compute(MetricTicket, total),
		ROIStock:    Compute(MetricROIStock, total),
		ROIBusiness: Compute(MetricROIBusiness, total),
		Opex:        total.Opex,
		Count:       total.Count,
	}
}
