package response

import (
	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase"
)

type AnalyticsResponse struct {
	Pedidos      []entities.PedidoAnalytics     `json:"pedidos"`
	Fornecedores []entities.FornecedorAnalytics `json:"fornecedores"`
	Periodos     []entities.PeriodoAnalytics    `json:"periodos"`
	KPIs         entities.KPIData               `json:"kpis"`
}

func FromAnalytics(r usecase.AnalyticsResultado) AnalyticsResponse {
	return AnalyticsResponse{
		Pedidos:      r.Pedidos,
		Fornecedores: r.Fornecedores,
		Periodos:     r.Periodos,
		KPIs:         r.KPIs,
	}
}
