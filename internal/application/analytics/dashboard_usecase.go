package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autorevenda/gestor-api/internal/application/dto"
	domanalytics "github.com/autorevenda/gestor-api/internal/domain/analytics"
	"github.com/autorevenda/gestor-api/internal/domain/entity"
	"github.com/autorevenda/gestor-api/internal/domain/repository"
)

// DashboardUseCase gera os cards de resumo do dashboard: KPIs do mês
// corrente com variação percentual sobre o mês anterior. Construído sobre
// o mesmo motor da série de gráfico, sem bucketing.
type DashboardUseCase struct {
	sales    repository.SaleRepository
	expenses repository.OperatingExpenseRepository
	now      func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	sales repository.SaleRepository,
	expenses repository.OperatingExpenseRepository,
	now func() time.Time,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{sales: sales, expenses: expenses, now: now}
}

// GetSummary monta o DashboardSummaryDTO da loja indicada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, storeID string) (*dto.DashboardSummaryDTO, error) {
	sales, err := uc.sales.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vendas: %w", err)
	}
	expenses, err := uc.expenses.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: despesas: %w", err)
	}

	now := uc.now()
	current := monthKPIs(sales, expenses, now, domanalytics.PeriodThisMonth)
	previous := monthKPIs(sales, expenses, now, domanalytics.PeriodLastMonth)

	return &dto.DashboardSummaryDTO{
		MonthLabel:      monthLabel(now),
		Revenue:         current.Revenue.Round(2),
		Profit:          current.Profit.Round(2),
		SalesCount:      current.Count,
		Ticket:          current.Ticket.Round(2),
		RevenueDeltaPct: deltaPct(current.Revenue, previous.Revenue),
		ProfitDeltaPct:  deltaPct(current.Profit, previous.Profit),
	}, nil
}

func monthKPIs(sales []entity.Sale, expenses []entity.OperatingExpense, now time.Time, token domanalytics.PeriodToken) domanalytics.KPIs {
	period := domanalytics.ResolvePeriod(domanalytics.PeriodInput{Token: token}, now, sales)
	filtered := domanalytics.ApplyFilter(sales, domanalytics.Filter{Range: period})
	return domanalytics.ComputeKPIs(domanalytics.TotalBucket(filtered, expenses, period))
}

// deltaPct variação percentual sobre a base; base não positiva → 0 (mesma
// guarda de divisão das métricas).
func deltaPct(current, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(base).Div(base).Mul(decimal.NewFromInt(100)).Round(2)
}

// monthLabel etiqueta legível do mês, ex: "Março 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
