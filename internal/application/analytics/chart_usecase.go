// Package analytics contém os casos de uso que orquestram o motor de
// séries temporais para os endpoints de gráfico, KPIs e filtros.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autorevenda/gestor-api/internal/application/dto"
	"github.com/autorevenda/gestor-api/internal/domain"
	domanalytics "github.com/autorevenda/gestor-api/internal/domain/analytics"
	"github.com/autorevenda/gestor-api/internal/domain/repository"
)

// defaultMetrics métricas plotadas quando a query não seleciona nenhuma.
var defaultMetrics = []domanalytics.Metric{
	domanalytics.MetricRevenue,
	domanalytics.MetricProfit,
}

// ChartUseCase monta a série de gráfico e os KPIs a partir das portas de
// leitura. Não guarda estado: cada chamada recalcula tudo das entradas.
type ChartUseCase struct {
	sales    repository.SaleRepository
	expenses repository.OperatingExpenseRepository
	now      func() time.Time
}

// NewChartUseCase constrói o caso de uso. now é injetável para os testes
// fixarem a referência de "hoje".
func NewChartUseCase(
	sales repository.SaleRepository,
	expenses repository.OperatingExpenseRepository,
	now func() time.Time,
) *ChartUseCase {
	if now == nil {
		now = time.Now
	}
	return &ChartUseCase{sales: sales, expenses: expenses, now: now}
}

// GetChart executa o pipeline completo: resolve o período, filtra, agrega,
// deriva as métricas e, se pedido, sobrepõe o período anterior.
func (uc *ChartUseCase) GetChart(ctx context.Context, storeID string, req dto.ChartRequest) (*dto.ChartSeriesDTO, error) {
	token := domanalytics.PeriodToken(req.Period)
	if req.Period == "" {
		token = domanalytics.PeriodThisMonth
	}
	if !domanalytics.ValidToken(token) {
		return nil, fmt.Errorf("período %q: %w", req.Period, domain.ErrInvalidInput)
	}

	sales, err := uc.sales.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("chart: vendas: %w", err)
	}
	expenses, err := uc.expenses.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("chart: despesas: %w", err)
	}

	now := uc.now()
	period := domanalytics.ResolvePeriod(domanalytics.PeriodInput{
		Token:       token,
		CustomStart: req.StartDate,
		CustomEnd:   req.EndDate,
	}, now, sales)

	granularity := domanalytics.GranularityFor(token)
	forceYear := token == domanalytics.PeriodCustom
	bucketer := domanalytics.NewBucketer(period, granularity, forceYear)

	filter := buildFilter(period, req.Make, req.Model, req.Payment, req.ProfitMin, req.ProfitMax)
	filtered := domanalytics.ApplyFilter(sales, filter)
	buckets := domanalytics.Aggregate(filtered, expenses, bucketer)

	metrics := parseMetricsCSV(req.Metrics)

	var prev []domanalytics.Bucket
	if req.Compare {
		prev = domanalytics.BuildComparison(sales, expenses, filter, bucketer, forceYear)
	}
	rows := domanalytics.Assemble(buckets, prev, metrics)

	axis := string(domanalytics.KindCurrency)
	if domanalytics.AllPercent(metrics) {
		axis = string(domanalytics.KindPercent)
	}

	return &dto.ChartSeriesDTO{
		Period:      periodDTO(period),
		Granularity: string(granularity),
		Axis:        axis,
		Metrics:     metricNames(metrics),
		Compare:     req.Compare,
		Rows:        flattenRows(rows, metrics),
	}, nil
}

// GetKPIs soma o conjunto filtrado inteiro, sem bucketing.
func (uc *ChartUseCase) GetKPIs(ctx context.Context, storeID string, req dto.KPIsRequest) (*dto.KPIsDTO, error) {
	token := domanalytics.PeriodToken(req.Period)
	if req.Period == "" {
		token = domanalytics.PeriodThisMonth
	}
	if !domanalytics.ValidToken(token) {
		return nil, fmt.Errorf("período %q: %w", req.Period, domain.ErrInvalidInput)
	}

	sales, err := uc.sales.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("kpis: vendas: %w", err)
	}
	expenses, err := uc.expenses.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("kpis: despesas: %w", err)
	}

	period := domanalytics.ResolvePeriod(domanalytics.PeriodInput{
		Token:       token,
		CustomStart: req.StartDate,
		CustomEnd:   req.EndDate,
	}, uc.now(), sales)

	filter := buildFilter(period, req.Make, req.Model, req.Payment, req.ProfitMin, req.ProfitMax)
	filtered := domanalytics.ApplyFilter(sales, filter)
	kpis := domanalytics.ComputeKPIs(domanalytics.TotalBucket(filtered, expenses, period))

	return &dto.KPIsDTO{
		Period:      periodDTO(period),
		Revenue:     kpis.Revenue.Round(2),
		Profit:      kpis.Profit.Round(2),
		Ticket:      kpis.Ticket.Round(2),
		ROIStock:    kpis.ROIStock.Round(2),
		ROIBusiness: kpis.ROIBusiness.Round(2),
		Opex:        kpis.Opex.Round(2),
		SalesCount:  kpis.Count,
	}, nil
}

// GetFilterOptions conjuntos de opções dos seletores de filtro. As opções
// de modelo são calculadas em relação à marca selecionada.
func (uc *ChartUseCase) GetFilterOptions(ctx context.Context, storeID string, req dto.FilterOptionsRequest) (*dto.FilterOptionsDTO, error) {
	sales, err := uc.sales.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("filtros: vendas: %w", err)
	}
	return &dto.FilterOptionsDTO{
		Makes:    domanalytics.MakeOptions(sales),
		Models:   domanalytics.ModelOptions(sales, req.Make),
		Payments: domanalytics.PaymentOptions(sales),
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildFilter(r domanalytics.DateRange, marca, modelo, pagamento, profitMin, profitMax string) domanalytics.Filter {
	f := domanalytics.Filter{
		Range:         r,
		Make:          marca,
		Model:         modelo,
		PaymentMethod: pagamento,
	}
	if v, err := decimal.NewFromString(profitMin); err == nil && profitMin != "" {
		f.ProfitMin = &v
	}
	if v, err := decimal.NewFromString(profitMax); err == nil && profitMax != "" {
		f.ProfitMax = &v
	}
	return f
}

// parseMetricsCSV nomes desconhecidos são ignorados; seleção vazia cai no
// default (nunca série sem métrica).
func parseMetricsCSV(csv string) []domanalytics.Metric {
	var out []domanalytics.Metric
	seen := make(map[domanalytics.Metric]struct{})
	for _, name := range strings.Split(csv, ",") {
		m, ok := domanalytics.ParseMetric(strings.TrimSpace(name))
		if !ok {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	if len(out) == 0 {
		return defaultMetrics
	}
	return out
}

func metricNames(metrics []domanalytics.Metric) []string {
	out := make([]string, len(metrics))
	for i, m := range metrics {
		out[i] = string(m)
	}
	return out
}

// flattenRows achata cada linha no contrato do gráfico:
// {"label": ..., "value_<métrica>": ..., "prev_<métrica>": ...}.
func flattenRows(rows []domanalytics.Row, metrics []domanalytics.Metric) []dto.ChartRowDTO {
	out := make([]dto.ChartRowDTO, len(rows))
	for i, row := range rows {
		flat := dto.ChartRowDTO{"label": row.Label}
		for _, m := range metrics {
			flat["value_"+string(m)] = row.Values[m].Round(2)
		}
		if row.Previous != nil {
			for _, m := range metrics {
				flat["prev_"+string(m)] = row.Previous[m].Round(2)
			}
		}
		out[i] = flat
	}
	return out
}

func periodDTO(r domanalytics.DateRange) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: r.Start.Format("2006-01-02"),
		EndDate:   r.End.Format("2006-01-02"),
	}
}
