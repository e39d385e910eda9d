package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"
)

var mesesPtBR = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// AnalyticsFiltro is an inclusive date range over dataEnvio, compared at
// day granularity.
type AnalyticsFiltro struct {
	Inicio time.Time
	Fim    time.Time
}

// AnalyticsResultado bundles the three read-only views computed over the
// custom-order set.
type AnalyticsResultado struct {
	Pedidos      []entities.PedidoAnalytics     `json:"pedidos"`
	Fornecedores []entities.FornecedorAnalytics `json:"fornecedores"`
	Periodos     []entities.PeriodoAnalytics    `json:"periodos"`
	KPIs         entities.KPIData               `json:"kpis"`
}

// IAnalyticsUseCase computes margin/supplier/period rollups. Pure reads, no
// persistence side effects.

type IAnalyticsUseCase interface {
	Calcular(ctx context.Context, filtro *AnalyticsFiltro) (AnalyticsResultado, error)
}

type AnalyticsUseCase struct {
	repo interfaces.IPedidoRepository

	// Recomputation is skipped when the filter did not actually change at
	// day granularity. Performance guard, not a correctness requirement.
	mu         sync.Mutex
	prevFiltro *AnalyticsFiltro
	cache      *AnalyticsResultado
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IPedidoRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

func (u *AnalyticsUseCase) Calcular(ctx context.Context, filtro *AnalyticsFiltro) (AnalyticsResultado, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cache != nil && filtrosIguais(filtro, u.prevFiltro) {
		return *u.cache, nil
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return AnalyticsResultado{}, err
	}

	pedidos := make([]entities.PedidoAnalytics, 0, len(all))
	for _, p := range all {
		if p.Tipo != entities.PedidoTipoPersonalizada {
			continue
		}
		if filtro != nil {
			data, err := time.Parse("2006-01-02", p.DataEnvio)
			if err != nil {
				log.Printf("[analytics][usecase] dataEnvio inválida numero=%s valor=%q", p.Numero, p.DataEnvio)
				continue
			}
			if data.Before(inicioDoDia(filtro.Inicio)) || data.After(fimDoDia(filtro.Fim)) {
				continue
			}
		}

		valor, err := entities.ParseValorBR(p.Valor)
		if err != nil {
			return AnalyticsResultado{}, fmt.Errorf("pedido %s: %w", p.Numero, err)
		}
		custo, err := entities.ParseValorBR(p.Custo)
		if err != nil {
			return AnalyticsResultado{}, fmt.Errorf("pedido %s: %w", p.Numero, err)
		}

		bruto := valor - custo
		percentual := 0.0
		if custo > 0 && valor > 0 {
			percentual = bruto / valor * 100
		}

		pedidos = append(pedidos, entities.PedidoAnalytics{
			Numero:              p.Numero,
			DataEnvio:           p.DataEnvio,
			Fornecedor:          p.Fornecedor,
			Valor:               valor,
			Custo:               custo,
			ResultadoBruto:      bruto,
			ResultadoPercentual: percentual,
			Status:              string(p.Status),
			IDFechamento:        p.IDFechamento,
		})
	}

	resultado := AnalyticsResultado{
		Pedidos:      pedidos,
		Fornecedores: rollupFornecedores(pedidos),
		Periodos:     rollupPeriodos(pedidos),
		KPIs:         calcularKPIs(pedidos),
	}

	u.prevFiltro = nil
	if filtro != nil {
		c := *filtro
		u.prevFiltro = &c
	}
	u.cache = &resultado
	return resultado, nil
}

func rollupFornecedores(pedidos []entities.PedidoAnalytics) []entities.FornecedorAnalytics {
	porNome := map[string]*entities.FornecedorAnalytics{}
	ordem := []string{}

	for _, p := range pedidos {
		f, ok := porNome[p.Fornecedor]
		if !ok {
			f = &entities.FornecedorAnalytics{
				Nome:        p.Fornecedor,
				MenorMargem: 100,
			}
			porNome[p.Fornecedor] = f
			ordem = append(ordem, p.Fornecedor)
		}

		f.TotalPedidos++
		f.ValorTotal += p.Valor
		f.CustoTotal += p.Custo
		f.ResultadoBruto += p.ResultadoBruto

		// Asymmetry kept on purpose: the max includes zero-margin orders,
		// the min skips them so unpriced orders don't read as 0% margin.
		if p.ResultadoPercentual > f.MaiorMargem {
			f.MaiorMargem = p.ResultadoPercentual
		}
		if p.ResultadoPercentual < f.MenorMargem && p.ResultadoPercentual > 0 {
			f.MenorMargem = p.ResultadoPercentual
		}
	}

	out := make([]entities.FornecedorAnalytics, 0, len(ordem))
	for _, nome := range ordem {
		f := porNome[nome]
		if f.ValorTotal > 0 {
			f.ResultadoPercentual = f.ResultadoBruto / f.ValorTotal * 100
		}
		out = append(out, *f)
	}
	return out
}

func rollupPeriodos(pedidos []entities.PedidoAnalytics) []entities.PeriodoAnalytics {
	porChave := map[string]*entities.PeriodoAnalytics{}

	for _, p := range pedidos {
		data, err := time.Parse("2006-01-02", p.DataEnvio)
		if err != nil {
			continue
		}
		chave := data.Format("2006-01")

		periodo, ok := porChave[chave]
		if !ok {
			periodo = &entities.PeriodoAnalytics{
				Chave:   chave,
				Periodo: fmt.Sprintf("%s/%d", mesesPtBR[data.Month()-1], data.Year()),
			}
			porChave[chave] = periodo
		}

		periodo.Pedidos++
		periodo.ValorTotal += p.Valor
		periodo.CustoTotal += p.Custo
		periodo.ResultadoBruto += p.ResultadoBruto
	}

	out := make([]entities.PeriodoAnalytics, 0, len(porChave))
	for _, periodo := range porChave {
		if periodo.ValorTotal > 0 {
			periodo.ResultadoPercentual = periodo.ResultadoBruto / periodo.ValorTotal * 100
		}
		out = append(out, *periodo)
	}

	// The yyyy-MM key sorts chronologically where the display name would
	// sort janeiro before fevereiro only by accident.
	sort.Slice(out, func(i, j int) bool { return out[i].Chave < out[j].Chave })
	return out
}

func calcularKPIs(pedidos []entities.PedidoAnalytics) entities.KPIData {
	if len(pedidos) == 0 {
		return entities.KPIData{}
	}

	kpis := entities.KPIData{
		TotalPedidos: len(pedidos),
		MenorMargem:  100,
	}
	for _, p := range pedidos {
		kpis.ValorTotal += p.Valor
		kpis.ResultadoBruto += p.ResultadoBruto

		if p.ResultadoPercentual > kpis.MaiorMargem {
			kpis.MaiorMargem = p.ResultadoPercentual
		}
		if p.ResultadoPercentual < kpis.MenorMargem && p.ResultadoPercentual > 0 {
			kpis.MenorMargem = p.ResultadoPercentual
		}
	}

	kpis.TicketMedio = kpis.ValorTotal / float64(kpis.TotalPedidos)
	if kpis.ValorTotal > 0 {
		kpis.MargemMedia = kpis.ResultadoBruto / kpis.ValorTotal * 100
	}
	return kpis
}

func filtrosIguais(a, b *AnalyticsFiltro) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return inicioDoDia(a.Inicio).Equal(inicioDoDia(b.Inicio)) &&
		fimDoDia(a.Fim).Equal(fimDoDia(b.Fim))
}
