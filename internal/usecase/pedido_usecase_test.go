package usecase

import (
	"context"
	"errors"
	"testing"

	"estamparia_xpto/internal/domain/entities"
	mock_interfaces "estamparia_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPedidoUseCase_ListarAbertos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewPedidoUseCase(repo)

	cancelado := pedidoFoo("A2", "10,00")
	cancelado.Status = entities.PedidoStatusCancelado
	fechado := pedidoFoo("A3", "10,00")
	fechado.IDFechamento = "f1"
	revenda := pedidoFoo("A4", "10,00")
	revenda.Tipo = entities.PedidoTipoRevenda
	deBar := pedidoFoo("A5", "10,00")
	deBar.Fornecedor = "Bar"

	repo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
		pedidoFoo("A1", "10,00"), cancelado, fechado, revenda, deBar,
	}, nil)

	abertos, fornecedores, err := uc.ListarAbertos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(abertos) != 2 {
		t.Fatalf("expected 2 open orders, got %d", len(abertos))
	}
	if len(fornecedores) != 3 || fornecedores[0] != FornecedorTodos || fornecedores[1] != "Bar" || fornecedores[2] != "Foo" {
		t.Fatalf("unexpected fornecedores %v", fornecedores)
	}
}

func TestPedidoUseCase_Editar(t *testing.T) {
	t.Run("success appends one edicao entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "A1").Return(pedidoFoo("A1", "100,00"), nil)
		repo.EXPECT().UpdateValores(gomock.Any(), "A1", "350,00", "120,00").Return(nil)
		repo.EXPECT().AppendHistorico(gomock.Any(), "A1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, item entities.HistoricoItem) error {
				if item.Tipo != entities.HistoricoTipoEdicao {
					t.Fatalf("expected edicao, got %s", item.Tipo)
				}
				if item.ValorAnterior.Valor != "300,00" || item.ValorAnterior.Custo != "100,00" {
					t.Fatalf("unexpected previous values %+v", item.ValorAnterior)
				}
				if item.ValorNovo.Valor != "350,00" || item.ValorNovo.Custo != "120,00" {
					t.Fatalf("unexpected new values %+v", item.ValorNovo)
				}
				if item.Usuario != "ana@estamparia.com" {
					t.Fatalf("unexpected usuario %s", item.Usuario)
				}
				return nil
			})

		p, err := uc.Editar(context.Background(), "A1", "350,00", "120,00", "ana@estamparia.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Valor != "350,00" || p.Custo != "120,00" {
			t.Fatalf("entity not updated: %+v", p)
		}
	})

	t.Run("invalid money string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "A1").Return(pedidoFoo("A1", "100,00"), nil)

		_, err := uc.Editar(context.Background(), "A1", "abc", "120,00", "ana@estamparia.com")
		if !errors.Is(err, entities.ErrValorInvalido) {
			t.Fatalf("expected ErrValorInvalido, got %v", err)
		}
	})

	t.Run("closed order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		fechado := pedidoFoo("A1", "100,00")
		fechado.Status = entities.PedidoStatusFechado
		repo.EXPECT().GetByNumero(gomock.Any(), "A1").Return(fechado, nil)

		_, err := uc.Editar(context.Background(), "A1", "350,00", "120,00", "ana@estamparia.com")
		if !errors.Is(err, ErrPedidoNaoEditavel) {
			t.Fatalf("expected ErrPedidoNaoEditavel, got %v", err)
		}
	})
}

func TestPedidoUseCase_Cancelar(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "A1").Return(pedidoFoo("A1", "100,00"), nil)
		repo.EXPECT().SetCancelado(gomock.Any(), "A1").Return(nil)
		repo.EXPECT().AppendHistorico(gomock.Any(), "A1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, item entities.HistoricoItem) error {
				if item.Tipo != entities.HistoricoTipoCancelamento {
					t.Fatalf("expected cancelamento, got %s", item.Tipo)
				}
				if item.ValorAnterior.Status != "ativo" || item.ValorNovo.Status != "cancelado" {
					t.Fatalf("unexpected transition %+v -> %+v", item.ValorAnterior, item.ValorNovo)
				}
				// No identity supplied: the sentinel actor is recorded.
				if item.Usuario != UsuarioDesconhecido {
					t.Fatalf("expected sentinel usuario, got %s", item.Usuario)
				}
				return nil
			})

		p, err := uc.Cancelar(context.Background(), "A1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PedidoStatusCancelado {
			t.Fatalf("expected cancelado, got %s", p.Status)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		cancelado := pedidoFoo("A1", "100,00")
		cancelado.Status = entities.PedidoStatusCancelado
		repo.EXPECT().GetByNumero(gomock.Any(), "A1").Return(cancelado, nil)

		_, err := uc.Cancelar(context.Background(), "A1", "ana@estamparia.com")
		if !errors.Is(err, ErrPedidoNaoCancelavel) {
			t.Fatalf("expected ErrPedidoNaoCancelavel, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "A9").Return(entities.Pedido{}, nil)

		_, err := uc.Cancelar(context.Background(), "A9", "ana@estamparia.com")
		if !errors.Is(err, ErrPedidoNaoEncontrado) {
			t.Fatalf("expected ErrPedidoNaoEncontrado, got %v", err)
		}
	})
}
