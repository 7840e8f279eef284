package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/autorevenda/gestor-api/internal/application/analytics"
)

// DashboardHandler endpoint dos cards de resumo.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumo do mês corrente com variação sobre o mês anterior
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), storeID(c))
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(summary)
}
