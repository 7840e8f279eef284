package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autorevenda/gestor-api/internal/domain/analytics"
	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sale(soldDate string, soldPrice, purchasePrice float64) entity.Sale {
	return entity.Sale{
		ID:            "v-" + soldDate,
		Make:          "Fiat",
		Model:         "Argo",
		SoldDate:      soldDate,
		SoldPrice:     decimal.NewFromFloat(soldPrice),
		PurchasePrice: decimal.NewFromFloat(purchasePrice),
		PaymentMethod: entity.PaymentCash,
	}
}

// referência fixa de "hoje" usada na maioria dos cenários
var testNow = date(2024, time.March, 15)

func resolve(t *testing.T, token analytics.PeriodToken) analytics.DateRange {
	t.Helper()
	return analytics.ResolvePeriod(analytics.PeriodInput{Token: token}, testNow, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Presets de calendário
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_Presets(t *testing.T) {
	cases := []struct {
		name       string
		token      analytics.PeriodToken
		start, end time.Time
	}{
		{"mês atual", analytics.PeriodThisMonth, date(2024, time.March, 1), date(2024, time.March, 31)},
		{"mês anterior", analytics.PeriodLastMonth, date(2024, time.February, 1), date(2024, time.February, 29)},
		{"trimestre atual", analytics.PeriodThisQuarter, date(2024, time.January, 1), date(2024, time.March, 31)},
		{"ano atual", analytics.PeriodThisYear, date(2024, time.January, 1), date(2024, time.December, 31)},
		{"últimos 3 meses", analytics.PeriodLast3, date(2024, time.January, 1), date(2024, time.March, 31)},
		{"últimos 6 meses", analytics.PeriodLast6, date(2023, time.October, 1), date(2024, time.March, 31)},
		{"últimos 12 meses", analytics.PeriodLast12, date(2023, time.April, 1), date(2024, time.March, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := resolve(t, tc.token)
			assert.True(t, r.Start.Equal(tc.start), "início: esperado %v, obtido %v", tc.start, r.Start)
			assert.True(t, r.End.Equal(tc.end), "fim: esperado %v, obtido %v", tc.end, r.End)
		})
	}
}

func TestResolvePeriod_QuarterBoundaries(t *testing.T) {
	// Um "agora" em cada trimestre; o início vem de floor(mês/3)*3.
	cases := []struct {
		now        time.Time
		start, end time.Time
	}{
		{date(2024, time.February, 10), date(2024, time.January, 1), date(2024, time.March, 31)},
		{date(2024, time.May, 10), date(2024, time.April, 1), date(2024, time.June, 30)},
		{date(2024, time.August, 10), date(2024, time.July, 1), date(2024, time.September, 30)},
		{date(2024, time.November, 10), date(2024, time.October, 1), date(2024, time.December, 31)},
	}
	for _, tc := range cases {
		r := analytics.ResolvePeriod(analytics.PeriodInput{Token: analytics.PeriodThisQuarter}, tc.now, nil)
		assert.True(t, r.Start.Equal(tc.start), "trimestre de %v", tc.now)
		assert.True(t, r.End.Equal(tc.end), "trimestre de %v", tc.now)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// all: min/max das datas de venda
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_All(t *testing.T) {
	sales := []entity.Sale{
		sale("2023-07-20", 50000, 40000),
		sale("2022-11-03", 30000, 25000),
		sale("2024-02-28", 80000, 60000),
		sale("data-quebrada", 10000, 5000), // ignorada, nunca propaga erro
	}
	r := analytics.ResolvePeriod(analytics.PeriodInput{Token: analytics.PeriodAll}, testNow, sales)
	assert.True(t, r.Start.Equal(date(2022, time.November, 3)))
	assert.True(t, r.End.Equal(date(2024, time.February, 28)))
}

func TestResolvePeriod_AllSemVendas(t *testing.T) {
	// Sem nenhuma venda parseável, degrada para o mês atual.
	r := analytics.ResolvePeriod(analytics.PeriodInput{Token: analytics.PeriodAll}, testNow, nil)
	assert.True(t, r.Start.Equal(date(2024, time.March, 1)))
	assert.True(t, r.End.Equal(date(2024, time.March, 31)))
}

// ──────────────────────────────────────────────────────────────────────────────
// custom: fallback por campo
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_Custom(t *testing.T) {
	r := analytics.ResolvePeriod(analytics.PeriodInput{
		Token:       analytics.PeriodCustom,
		CustomStart: "2023-12-20",
		CustomEnd:   "2024-01-10",
	}, testNow, nil)
	assert.True(t, r.Start.Equal(date(2023, time.December, 20)))
	assert.True(t, r.End.Equal(date(2024, time.January, 10)))
}

func TestResolvePeriod_CustomFallbackPorCampo(t *testing.T) {
	t.Run("início malformado cai no 1º dia do mês atual", func(t *testing.T) {
		r := analytics.ResolvePeriod(analytics.PeriodInput{
			Token:       analytics.PeriodCustom,
			CustomStart: "15/01/2024", // formato errado
			CustomEnd:   "2024-03-20",
		}, testNow, nil)
		assert.True(t, r.Start.Equal(date(2024, time.March, 1)))
		assert.True(t, r.End.Equal(date(2024, time.March, 20)), "o fim válido não é afetado")
	})

	t.Run("fim ausente cai no último dia do mês atual", func(t *testing.T) {
		r := analytics.ResolvePeriod(analytics.PeriodInput{
			Token:       analytics.PeriodCustom,
			CustomStart: "2024-02-10",
		}, testNow, nil)
		assert.True(t, r.Start.Equal(date(2024, time.February, 10)), "o início válido não é afetado")
		assert.True(t, r.End.Equal(date(2024, time.March, 31)))
	})

	t.Run("ambos ausentes equivalem ao mês atual", func(t *testing.T) {
		r := analytics.ResolvePeriod(analytics.PeriodInput{Token: analytics.PeriodCustom}, testNow, nil)
		assert.True(t, r.Start.Equal(date(2024, time.March, 1)))
		assert.True(t, r.End.Equal(date(2024, time.March, 31)))
	})
}

func TestValidToken(t *testing.T) {
	for _, token := range []analytics.PeriodToken{
		analytics.PeriodThisMonth, analytics.PeriodLastMonth, analytics.PeriodThisQuarter,
		analytics.PeriodThisYear, analytics.PeriodLast3, analytics.PeriodLast6,
		analytics.PeriodLast12, analytics.PeriodAll, analytics.PeriodCustom,
	} {
		assert.True(t, analytics.ValidToken(token), "token %q deve ser válido", token)
	}
	assert.False(t, analytics.ValidToken("last_week"))
	assert.False(t, analytics.ValidToken(""))
}

func TestParseDate(t *testing.T) {
	got, ok := analytics.ParseDate("2024-02-29")
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, time.February, 29)))

	// timestamp RFC3339 (o backend já gravou os dois formatos)
	got, ok = analytics.ParseDate("2024-02-29T14:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 0, got.Hour(), "timestamps são normalizados para a meia-noite")

	for _, bad := range []string{"", "ontem", "29/02/2024", "2024-13-01"} {
		_, ok := analytics.ParseDate(bad)
		assert.False(t, ok, "%q não deve parsear", bad)
	}
}
