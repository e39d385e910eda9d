package routes

import (
	"estamparia_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos     = "/pedidos"
	PathFechamentos = "/fechamentos"
	PathAnalytics   = "/analytics"
)

func addEstampariaRoutes(
	rg *gin.RouterGroup,
	pedidoHandler *handlers.PedidoHandler,
	fechamentoHandler *handlers.FechamentoHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.GET("", pedidoHandler.ListPedidos)
		pedidos.GET("/:numero", pedidoHandler.GetPedido)
		pedidos.PATCH("/:numero", pedidoHandler.EditarPedido)
		pedidos.PATCH("/:numero/cancelar", pedidoHandler.CancelarPedido)
	}

	fechamentos := rg.Group(PathFechamentos)
	{
		fechamentos.POST("", fechamentoHandler.GerarFechamento)
		fechamentos.GET("", fechamentoHandler.ListFechamentos)
		fechamentos.GET("/:id", fechamentoHandler.GetFechamento)
	}

	rg.GET(PathAnalytics, analyticsHandler.GetAnalytics)
}
