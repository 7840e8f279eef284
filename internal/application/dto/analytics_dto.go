package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ChartRequest parâmetros para GET /api/analytics/chart.
type ChartRequest struct {
	Period    string `query:"period"`     // preset: this_month, last_month, this_quarter, this_year, last_3, last_6, last_12, all, custom
	StartDate string `query:"start_date"` // YYYY-MM-DD; só para period=custom
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; só para period=custom
	Metrics   string `query:"metrics"`    // CSV: revenue,profit,ticket,roi_stock,roi_business (default revenue,profit)
	Make      string `query:"marca"`      // "all" ou vazio desliga o filtro
	Model     string `query:"modelo"`
	Payment   string `query:"pagamento"`
	ProfitMin string `query:"profit_min"` // piso de lucro (número); vazio desliga
	ProfitMax string `query:"profit_max"` // teto de lucro (número); vazio desliga
	Compare   bool   `query:"compare"`    // liga a série do período anterior
}

// KPIsRequest parâmetros para GET /api/analytics/kpis — mesmos filtros do
// chart, sem métricas nem comparação.
type KPIsRequest struct {
	Period    string `query:"period"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Make      string `query:"marca"`
	Model     string `query:"modelo"`
	Payment   string `query:"pagamento"`
	ProfitMin string `query:"profit_min"`
	ProfitMax string `query:"profit_max"`
}

// FilterOptionsRequest parâmetros para GET /api/analytics/filters.
type FilterOptionsRequest struct {
	Make string `query:"marca"` // restringe as opções de modelo à marca
}

// ── Respostas ─────────────────────────────────────────────────────────────────

// PeriodDTO intervalo resolvido do período.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ChartRowDTO uma linha da série: "label" + "value_<métrica>" e, com
// comparação ligada, "prev_<métrica>" alinhado posicionalmente.
type ChartRowDTO map[string]any

// ChartSeriesDTO resposta completa de GET /api/analytics/chart.
type ChartSeriesDTO struct {
	Period      PeriodDTO     `json:"period"`
	Granularity string        `json:"granularity"` // daily | monthly
	Axis        string        `json:"axis"`        // currency | percent (todas as métricas percentuais)
	Metrics     []string      `json:"metrics"`
	Compare     bool          `json:"compare"`
	Rows        []ChartRowDTO `json:"rows"`
}

// KPIsDTO valores escalares dos cards de resumo (sem bucketing).
type KPIsDTO struct {
	Period      PeriodDTO       `json:"period"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	Ticket      decimal.Decimal `json:"ticket"`
	ROIStock    decimal.Decimal `json:"roi_stock"`    // %
	ROIBusiness decimal.Decimal `json:"roi_business"` // %
	Opex        decimal.Decimal `json:"opex"`
	SalesCount  int             `json:"sales_count"`
}

// FilterOptionsDTO conjuntos de opções dos filtros. Modelos sempre
// relativos à marca selecionada.
type FilterOptionsDTO struct {
	Makes    []string `json:"marcas"`
	Models   []string `json:"modelos"`
	Payments []string `json:"pagamentos"`
}

// DashboardSummaryDTO cards do dashboard: mês corrente + variação
// percentual sobre o mês anterior.
type DashboardSummaryDTO struct {
	MonthLabel      string          `json:"month_label"` // ex: "Março 2026"
	Revenue         decimal.Decimal `json:"revenue"`
	Profit          decimal.Decimal `json:"profit"`
	SalesCount      int             `json:"sales_count"`
	Ticket          decimal.Decimal `json:"ticket"`
	RevenueDeltaPct decimal.Decimal `json:"revenue_delta_pct"` // vs mês anterior; 0 se base zero
	ProfitDeltaPct  decimal.Decimal `json:"profit_delta_pct"`
}
