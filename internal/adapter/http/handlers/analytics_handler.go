package handlers

import (
	"net/http"
	"time"

	response "estamparia_xpto/internal/adapter/http/dto/response"
	"estamparia_xpto/internal/usecase"
	"estamparia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalyticsFilter = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid analytics filter", http.StatusBadRequest)

// AnalyticsHandler serves the margin/supplier/period rollups.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// GetAnalytics computes the rollups, optionally bounded by inicio/fim query
// params (ISO calendar dates, both required to apply the range).
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	filtro, err := resolveAnalyticsFiltro(c.Query("inicio"), c.Query("fim"))
	if err != nil {
		c.JSON(errInvalidAnalyticsFilter.HTTPStatus, errInvalidAnalyticsFilter.ToHTTPError())
		return
	}

	resultado, err := h.usecase.Calcular(c.Request.Context(), filtro)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnalytics(resultado))
}

func resolveAnalyticsFiltro(inicio, fim string) (*usecase.AnalyticsFiltro, error) {
	if inicio == "" && fim == "" {
		return nil, nil
	}

	i, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return nil, err
	}
	f, err := time.Parse("2006-01-02", fim)
	if err != nil {
		return nil, err
	}
	return &usecase.AnalyticsFiltro{Inicio: i, Fim: f}, nil
}
