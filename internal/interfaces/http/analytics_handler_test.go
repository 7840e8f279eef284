package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/autorevenda/gestor-api/internal/application/analytics"
	"github.com/autorevenda/gestor-api/internal/domain/entity"
	"github.com/autorevenda/gestor-api/internal/infrastructure/memory"
	apphttp "github.com/autorevenda/gestor-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp aplicação Fiber mínima com o router real e um store
// semeado; "agora" fixado em 01/03/2024.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	store.SeedSales("default", []entity.Sale{
		{
			Make: "Fiat", Model: "Argo", SoldDate: "2024-01-15",
			SoldPrice:     decimal.NewFromInt(60000),
			PurchasePrice: decimal.NewFromInt(50000),
			PaymentMethod: entity.PaymentCash,
		},
	})

	now := func() time.Time { return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local) }
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ChartUC:     appanalytics.NewChartUseCase(store, store.Expenses(), now),
		DashboardUC: appanalytics.NewDashboardUseCase(store, store.Expenses(), now),
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/chart
// ──────────────────────────────────────────────────────────────────────────────

func TestGetChart_OK(t *testing.T) {
	app := buildTestApp(t)

	status, body := doGet(t, app, "/api/analytics/chart?period=last_3&metrics=profit,roi_stock")
	require.Equal(t, http.StatusOK, status)

	var series struct {
		Granularity string                   `json:"granularity"`
		Axis        string                   `json:"axis"`
		Rows        []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(body, &series))

	assert.Equal(t, "monthly", series.Granularity)
	assert.Equal(t, "currency", series.Axis)
	require.Len(t, series.Rows, 3)
	assert.Equal(t, "Jan/24", series.Rows[0]["label"])
	assert.Contains(t, series.Rows[0], "value_profit")
	assert.Contains(t, series.Rows[0], "value_roi_stock")
}

func TestGetChart_PeriodoDesconhecido(t *testing.T) {
	app := buildTestApp(t)

	status, body := doGet(t, app, "/api/analytics/chart?period=last_week")
	assert.Equal(t, http.StatusBadRequest, status)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "BAD_REQUEST", errResp.Code)
}

func TestGetKPIs_OK(t *testing.T) {
	app := buildTestApp(t)

	status, body := doGet(t, app, "/api/analytics/kpis?period=last_3")
	require.Equal(t, http.StatusOK, status)

	var kpis struct {
		Revenue    decimal.Decimal `json:"revenue"`
		SalesCount int             `json:"sales_count"`
	}
	require.NoError(t, json.Unmarshal(body, &kpis))
	assert.True(t, kpis.Revenue.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 1, kpis.SalesCount)
}

func TestGetFilterOptions_OK(t *testing.T) {
	app := buildTestApp(t)

	status, body := doGet(t, app, "/api/analytics/filters?marca=Fiat")
	require.Equal(t, http.StatusOK, status)

	var opts struct {
		Makes  []string `json:"marcas"`
		Models []string `json:"modelos"`
	}
	require.NoError(t, json.Unmarshal(body, &opts))
	assert.Equal(t, []string{"Fiat"}, opts.Makes)
	assert.Equal(t, []string{"Argo"}, opts.Models)
}

func TestGetDashboardSummary_OK(t *testing.T) {
	app := buildTestApp(t)

	status, body := doGet(t, app, "/api/dashboard/summary")
	require.Equal(t, http.StatusOK, status)

	var summary struct {
		MonthLabel string `json:"month_label"`
	}
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, "Março 2024", summary.MonthLabel)
}
