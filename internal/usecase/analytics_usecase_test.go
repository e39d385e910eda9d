package usecase

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"estamparia_xpto/internal/domain/entities"
	mock_interfaces "estamparia_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pedidoAnalitico(numero, dataEnvio, fornecedor, valor, custo string) entities.Pedido {
	return entities.Pedido{
		Numero:     numero,
		DataEnvio:  dataEnvio,
		Fornecedor: fornecedor,
		Valor:      valor,
		Custo:      custo,
		Tipo:       entities.PedidoTipoPersonalizada,
	}
}

func TestAnalyticsUseCase_Calcular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewAnalyticsUseCase(repo)

	revenda := pedidoAnalitico("R1", "2024-05-10", "Foo", "80,00", "40,00")
	revenda.Tipo = entities.PedidoTipoRevenda

	repo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
		pedidoAnalitico("A1", "2024-05-10", "Foo", "200,00", "100,00"), // 50%
		pedidoAnalitico("A2", "2024-05-20", "Foo", "100,00", "80,00"),  // 20%
		pedidoAnalitico("A3", "2024-06-01", "Bar", "150,00", ""),       // unpriced
		revenda, // resale orders stay out of analytics
	}, nil)

	out, err := uc.Calcular(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Pedidos) != 3 {
		t.Fatalf("expected 3 pedidos, got %d", len(out.Pedidos))
	}

	// Unpriced order: percentual is 0, not 100, and it still counts.
	var a3 entities.PedidoAnalytics
	for _, p := range out.Pedidos {
		if p.Numero == "A3" {
			a3 = p
		}
	}
	if a3.ResultadoPercentual != 0 {
		t.Fatalf("expected resultadoPercentual 0 for unpriced order, got %v", a3.ResultadoPercentual)
	}
	if a3.ResultadoBruto != 150 {
		t.Fatalf("expected resultadoBruto 150, got %v", a3.ResultadoBruto)
	}

	if len(out.Fornecedores) != 2 {
		t.Fatalf("expected 2 fornecedores, got %d", len(out.Fornecedores))
	}
	var foo entities.FornecedorAnalytics
	for _, f := range out.Fornecedores {
		if f.Nome == "Foo" {
			foo = f
		}
	}
	if foo.TotalPedidos != 2 || foo.ValorTotal != 300 || foo.CustoTotal != 180 {
		t.Fatalf("unexpected Foo rollup %+v", foo)
	}
	if foo.MaiorMargem != 50 || foo.MenorMargem != 20 {
		t.Fatalf("unexpected Foo margens %+v", foo)
	}
	if foo.ResultadoPercentual != 40 { // 120/300
		t.Fatalf("expected 40%%, got %v", foo.ResultadoPercentual)
	}

	if len(out.Periodos) != 2 {
		t.Fatalf("expected 2 periodos, got %d", len(out.Periodos))
	}
	if out.Periodos[0].Periodo != "maio/2024" || out.Periodos[1].Periodo != "junho/2024" {
		t.Fatalf("periods out of chronological order: %+v", out.Periodos)
	}
	if out.Periodos[0].Pedidos != 2 || out.Periodos[1].Pedidos != 1 {
		t.Fatalf("unexpected period counts %+v", out.Periodos)
	}

	if out.KPIs.TotalPedidos != 3 || out.KPIs.ValorTotal != 450 {
		t.Fatalf("unexpected KPIs %+v", out.KPIs)
	}
	if out.KPIs.TicketMedio != 150 {
		t.Fatalf("expected ticket médio 150, got %v", out.KPIs.TicketMedio)
	}
	if out.KPIs.MaiorMargem != 50 || out.KPIs.MenorMargem != 20 {
		t.Fatalf("unexpected KPI margens %+v", out.KPIs)
	}
	// 270/450 = 60%
	if out.KPIs.MargemMedia != 60 {
		t.Fatalf("expected margem média 60, got %v", out.KPIs.MargemMedia)
	}
}

// An order with custo but no valor must not divide by zero: the percentual
// stays 0 and the result keeps serializing to JSON.
func TestAnalyticsUseCase_Calcular_CustoSemValor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewAnalyticsUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
		pedidoAnalitico("A1", "2024-05-10", "Foo", "0,00", "10,00"),
		pedidoAnalitico("A2", "2024-05-11", "Foo", "", "10,00"),
	}, nil)

	out, err := uc.Calcular(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range out.Pedidos {
		if math.IsInf(p.ResultadoPercentual, 0) || math.IsNaN(p.ResultadoPercentual) {
			t.Fatalf("non-finite percentual for %s: %v", p.Numero, p.ResultadoPercentual)
		}
		if p.ResultadoPercentual != 0 {
			t.Fatalf("expected percentual 0 for %s, got %v", p.Numero, p.ResultadoPercentual)
		}
		if p.ResultadoBruto != -10 {
			t.Fatalf("expected resultadoBruto -10 for %s, got %v", p.Numero, p.ResultadoBruto)
		}
	}

	if _, err := json.Marshal(out); err != nil {
		t.Fatalf("result is not serializable: %v", err)
	}
}

func TestAnalyticsUseCase_Calcular_DateFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewAnalyticsUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
		pedidoAnalitico("A1", "2024-05-10", "Foo", "200,00", "100,00"),
		pedidoAnalitico("A2", "2024-06-15", "Foo", "100,00", "80,00"),
	}, nil)

	filtro := &AnalyticsFiltro{
		Inicio: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Fim:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	out, err := uc.Calcular(context.Background(), filtro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Pedidos) != 1 || out.Pedidos[0].Numero != "A2" {
		t.Fatalf("expected only A2 in range, got %+v", out.Pedidos)
	}
}

// Re-computation only happens when the filter actually changed at day
// granularity; the repository must not be hit again for an equal filter.
func TestAnalyticsUseCase_Calcular_CacheGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewAnalyticsUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
		pedidoAnalitico("A1", "2024-05-10", "Foo", "200,00", "100,00"),
	}, nil).Times(2)

	filtro := &AnalyticsFiltro{
		Inicio: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Fim:    time.Date(2024, 5, 31, 8, 30, 0, 0, time.UTC),
	}
	if _, err := uc.Calcular(context.Background(), filtro); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same day, different time of day: still equal.
	mesmoDia := &AnalyticsFiltro{
		Inicio: time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC),
		Fim:    time.Date(2024, 5, 31, 1, 0, 0, 0, time.UTC),
	}
	if _, err := uc.Calcular(context.Background(), mesmoDia); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outroDia := &AnalyticsFiltro{
		Inicio: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Fim:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	}
	if _, err := uc.Calcular(context.Background(), outroDia); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
