package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "estamparia_xpto/internal/adapter/http/dto/request"
	response "estamparia_xpto/internal/adapter/http/dto/response"
	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase"
	"estamparia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid pedido payload", http.StatusBadRequest)

// PedidoHandler handles HTTP requests for orders.

type PedidoHandler struct {
	usecase usecase.IPedidoUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc}
}

// ListPedidos returns the open (closable) orders plus the distinct supplier
// names for the filter dropdown.
func (h *PedidoHandler) ListPedidos(c *gin.Context) {
	pedidos, fornecedores, err := h.usecase.ListarAbertos(c.Request.Context())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidos(pedidos, fornecedores))
}

func (h *PedidoHandler) GetPedido(c *gin.Context) {
	numero := strings.TrimSpace(c.Param("numero"))
	if numero == "" {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.GetByNumero(c.Request.Context(), numero)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func (h *PedidoHandler) EditarPedido(c *gin.Context) {
	numero := strings.TrimSpace(c.Param("numero"))
	if numero == "" {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	var payload request.EditarPedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Editar(c.Request.Context(), numero, payload.Valor, payload.Custo, usuarioFromHeader(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func (h *PedidoHandler) CancelarPedido(c *gin.Context) {
	numero := strings.TrimSpace(c.Param("numero"))
	if numero == "" {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Cancelar(c.Request.Context(), numero, usuarioFromHeader(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func mapPedidoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNumeroPedidoInvalido), errors.Is(err, entities.ErrValorInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNaoEncontrado):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNaoEditavel):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_EDITABLE", "Pedido fechado ou cancelado não pode ser editado", http.StatusConflict)
	case errors.Is(err, usecase.ErrPedidoNaoCancelavel):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_CANCELABLE", "Pedido já fechado ou cancelado", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
