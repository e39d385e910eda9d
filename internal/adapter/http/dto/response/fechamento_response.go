package response

import (
	"time"

	"estamparia_xpto/internal/domain/entities"
)

type FechamentoResponse struct {
	ID            string                   `json:"id"`
	Fornecedor    string                   `json:"fornecedor"`
	DataPagamento string                   `json:"dataPagamento"`
	ValorTotal    string                   `json:"valorTotal"`
	Pedidos       []entities.PedidoResumo  `json:"pedidos"`
	Usuario       string                   `json:"usuario"`
	DataRegistro  time.Time                `json:"dataRegistro"`
	Log           []entities.FechamentoLog `json:"log"`
	BlingRegistro *entities.BlingRegistro  `json:"blingRegistro,omitempty"`
}

func FromFechamento(f entities.Fechamento) FechamentoResponse {
	return FechamentoResponse{
		ID:            f.ID,
		Fornecedor:    f.Fornecedor,
		DataPagamento: f.DataPagamento,
		ValorTotal:    f.ValorTotal,
		Pedidos:       f.Pedidos,
		Usuario:       f.Usuario,
		DataRegistro:  f.DataRegistro,
		Log:           f.Log,
		BlingRegistro: f.BlingRegistro,
	}
}

func FromFechamentos(fechamentos []entities.Fechamento) []FechamentoResponse {
	out := make([]FechamentoResponse, 0, len(fechamentos))
	for _, f := range fechamentos {
		out = append(out, FromFechamento(f))
	}
	return out
}
