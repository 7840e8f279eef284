package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/autorevenda/gestor-api/internal/application/analytics"
	"github.com/autorevenda/gestor-api/internal/application/dto"
	"github.com/autorevenda/gestor-api/internal/domain"
)

// defaultStoreID loja usada quando a query não indica store_id (instalação
// de loja única, o caso comum).
const defaultStoreID = "default"

func storeID(c *fiber.Ctx) string {
	if id := c.Query("store_id"); id != "" {
		return id
	}
	return defaultStoreID
}

// AnalyticsHandler endpoints da série de gráfico, KPIs e opções de filtro.
type AnalyticsHandler struct {
	uc *appanalytics.ChartUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(uc *appanalytics.ChartUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetChart godoc
// @Summary      Série temporal de vendas por bucket (diário ou mensal)
// @Description  Resolve o período, aplica os filtros e devolve uma linha por
//
//	bucket com value_<métrica> e, com compare=true, prev_<métrica>
//	do período anterior de mesmo comprimento.
//
// @Tags         analytics
// @Produce      json
// @Param        period      query  string  false  "Preset de período (default this_month)."
// @Param        start_date  query  string  false  "Início custom (YYYY-MM-DD)."
// @Param        end_date    query  string  false  "Fim custom (YYYY-MM-DD)."
// @Param        metrics     query  string  false  "CSV de métricas (default revenue,profit)."
// @Param        marca       query  string  false  "Filtro de marca ('all' desliga)."
// @Param        modelo      query  string  false  "Filtro de modelo."
// @Param        pagamento   query  string  false  "Filtro de forma de pagamento."
// @Param        profit_min  query  string  false  "Piso de lucro."
// @Param        profit_max  query  string  false  "Teto de lucro."
// @Param        compare     query  bool    false  "Sobrepõe o período anterior."
// @Success      200  {object}  dto.ChartSeriesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/chart [get]
func (h *AnalyticsHandler) GetChart(c *fiber.Ctx) error {
	var req dto.ChartRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}

	series, err := h.uc.GetChart(c.Context(), storeID(c), req)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(series)
}

// GetKPIs godoc
// @Summary      KPIs escalares do período filtrado (sem bucketing)
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.KPIsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *fiber.Ctx) error {
	var req dto.KPIsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}

	kpis, err := h.uc.GetKPIs(c.Context(), storeID(c), req)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(kpis)
}

// GetFilterOptions godoc
// @Summary      Opções dos seletores de filtro (modelos relativos à marca)
// @Tags         analytics
// @Produce      json
// @Param        marca  query  string  false  "Restringe as opções de modelo."
// @Success      200  {object}  dto.FilterOptionsDTO
// @Router       /api/analytics/filters [get]
func (h *AnalyticsHandler) GetFilterOptions(c *fiber.Ctx) error {
	var req dto.FilterOptionsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}

	opts, err := h.uc.GetFilterOptions(c.Context(), storeID(c), req)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(opts)
}

// errorStatus mapeia erros de domínio para status HTTP. Token de período
// desconhecido é erro do cliente; o resto é falha interna.
func errorStatus(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
