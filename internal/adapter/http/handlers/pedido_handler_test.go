package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estamparia_xpto/internal/adapter/http/handlers/mocks"
	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPedidoHandler_ListPedidos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPedidoUseCase(ctrl)
	h := NewPedidoHandler(uc)

	r := gin.New()
	r.GET("/v1/pedidos", h.ListPedidos)

	uc.EXPECT().ListarAbertos(gomock.Any()).Return(
		[]entities.Pedido{{Numero: "A1", Fornecedor: "Foo", Valor: "200,00", Tipo: entities.PedidoTipoPersonalizada}},
		[]string{"Todos", "Foo"},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/pedidos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Pedidos []struct {
			Numero string `json:"numero"`
			Status string `json:"status"`
		} `json:"pedidos"`
		Fornecedores []string `json:"fornecedores"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Pedidos) != 1 || body.Pedidos[0].Numero != "A1" {
		t.Fatalf("unexpected pedidos %+v", body.Pedidos)
	}
	// Legacy empty status must come out normalized.
	if body.Pedidos[0].Status != "ativo" {
		t.Fatalf("expected status ativo, got %q", body.Pedidos[0].Status)
	}
	if len(body.Fornecedores) != 2 || body.Fornecedores[0] != "Todos" {
		t.Fatalf("unexpected fornecedores %v", body.Fornecedores)
	}
}

func TestPedidoHandler_EditarPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero", h.EditarPedido)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid money string maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero", h.EditarPedido)

		uc.EXPECT().Editar(gomock.Any(), "A1", "abc", "", "").Return(entities.Pedido{}, entities.ErrValorInvalido)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1", bytes.NewBufferString(`{"valor":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closed order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero", h.EditarPedido)

		uc.EXPECT().Editar(gomock.Any(), "A1", "150,00", "80,00", "joao").Return(entities.Pedido{}, usecase.ErrPedidoNaoEditavel)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1", bytes.NewBufferString(`{"valor":"150,00","custo":"80,00"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Usuario", "joao")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero", h.EditarPedido)

		uc.EXPECT().Editar(gomock.Any(), "A1", "150,00", "80,00", "joao").
			Return(entities.Pedido{Numero: "A1", Valor: "150,00", Custo: "80,00", Tipo: entities.PedidoTipoPersonalizada}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1", bytes.NewBufferString(`{"valor":"150,00","custo":"80,00"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Usuario", "joao")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_CancelarPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already closed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero/cancelar", h.CancelarPedido)

		uc.EXPECT().Cancelar(gomock.Any(), "A1", "").Return(entities.Pedido{}, usecase.ErrPedidoNaoCancelavel)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1/cancelar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:numero/cancelar", h.CancelarPedido)

		uc.EXPECT().Cancelar(gomock.Any(), "A1", "maria").
			Return(entities.Pedido{Numero: "A1", Status: entities.PedidoStatusCancelado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/A1/cancelar", nil)
		req.Header.Set("X-Usuario", "maria")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_GetPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPedidoUseCase(ctrl)
	h := NewPedidoHandler(uc)

	r := gin.New()
	r.GET("/v1/pedidos/:numero", h.GetPedido)

	uc.EXPECT().GetByNumero(gomock.Any(), "missing").Return(entities.Pedido{}, usecase.ErrPedidoNaoEncontrado)

	req := httptest.NewRequest(http.MethodGet, "/v1/pedidos/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
