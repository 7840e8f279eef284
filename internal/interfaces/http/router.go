package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/autorevenda/gestor-api/internal/application/analytics"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ChartUC     *appanalytics.ChartUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.ChartUC)
	analyticsGroup.Get("/chart", analyticsHandler.GetChart)
	analyticsGroup.Get("/kpis", analyticsHandler.GetKPIs)
	analyticsGroup.Get("/filters", analyticsHandler.GetFilterOptions)

	dashboardGroup := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup.Get("/summary", dashboardHandler.GetSummary)
}
