package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	request "estamparia_xpto/internal/adapter/http/dto/request"
	response "estamparia_xpto/internal/adapter/http/dto/response"
	"estamparia_xpto/internal/usecase"
	"estamparia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFechamentoPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid fechamento payload", http.StatusBadRequest)

// FechamentoHandler handles HTTP requests for supplier closures.

type FechamentoHandler struct {
	usecase usecase.IFechamentoUseCase
}

func NewFechamentoHandler(uc usecase.IFechamentoUseCase) *FechamentoHandler {
	return &FechamentoHandler{usecase: uc}
}

// GerarFechamento posts the payable to Bling and, once accepted, records
// the closure and flips the selected orders.
func (h *FechamentoHandler) GerarFechamento(c *gin.Context) {
	var payload request.GerarFechamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFechamentoPayload.HTTPStatus, errInvalidFechamentoPayload.ToHTTPError())
		return
	}

	dataPagamento, err := payload.ResolveDataPagamento()
	if err != nil {
		c.JSON(errInvalidFechamentoPayload.HTTPStatus, errInvalidFechamentoPayload.ToHTTPError())
		return
	}

	fechamento, err := h.usecase.GerarFechamento(c.Request.Context(), usecase.GerarFechamentoInput{
		Numeros:       payload.ResolveNumeros(),
		DataPagamento: dataPagamento,
		Usuario:       usuarioFromHeader(c),
	})
	if err != nil {
		appErr := mapFechamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFechamento(fechamento))
}

func (h *FechamentoHandler) ListFechamentos(c *gin.Context) {
	filtro := usecase.FechamentoFiltro{
		Fornecedor: strings.TrimSpace(c.Query("fornecedor")),
	}

	if v := c.Query("inicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(errInvalidFechamentoPayload.HTTPStatus, errInvalidFechamentoPayload.ToHTTPError())
			return
		}
		filtro.Inicio = &t
	}
	if v := c.Query("fim"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(errInvalidFechamentoPayload.HTTPStatus, errInvalidFechamentoPayload.ToHTTPError())
			return
		}
		filtro.Fim = &t
	}

	fechamentos, err := h.usecase.Listar(c.Request.Context(), filtro)
	if err != nil {
		appErr := mapFechamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFechamentos(fechamentos))
}

func (h *FechamentoHandler) GetFechamento(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(errInvalidFechamentoPayload.HTTPStatus, errInvalidFechamentoPayload.ToHTTPError())
		return
	}

	fechamento, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapFechamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFechamento(fechamento))
}

func mapFechamentoError(err error) *pkg.AppError {
	var recusado *usecase.BlingRecusadoError
	var parcial *usecase.FechamentoParcialError

	switch {
	case errors.Is(err, usecase.ErrSelecaoVazia), errors.Is(err, usecase.ErrDataPagamentoObrigatoria):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFornecedorDiferente):
		return pkg.NewDomainErrorSimple("FORNECEDOR_MISMATCH", "Só é possível fechar pedidos do mesmo fornecedor", http.StatusConflict)
	case errors.Is(err, usecase.ErrPedidoNaoEncontrado):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNaoFechavel):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_CLOSABLE", "Pedido não disponível para fechamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrChaveAPINaoConfigurada):
		return pkg.NewDomainError("BLING_CONFIG_ERROR", "API key do Bling não configurada", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBlingIndisponivel):
		return pkg.NewDomainError("BLING_UNREACHABLE", "Não foi possível contatar o Bling", err, http.StatusBadGateway)
	case errors.As(err, &recusado):
		return pkg.NewDomainError("BLING_REJECTED", "Bling recusou a conta a pagar", err, http.StatusBadGateway)
	case errors.As(err, &parcial):
		msg := fmt.Sprintf("Fechamento %s gravado parcialmente; pedidos pendentes: %s",
			parcial.IDFechamento, strings.Join(parcial.Pendentes, ", "))
		return pkg.NewDomainError("FECHAMENTO_PARCIAL", msg, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrFechamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("FECHAMENTO_NOT_FOUND", "Fechamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// usuarioFromHeader extracts the acting user. There is no auth layer; the
// frontend forwards the signed-in user's name and the use case falls back
// to the unknown-user sentinel when absent.
func usuarioFromHeader(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Usuario"))
}
