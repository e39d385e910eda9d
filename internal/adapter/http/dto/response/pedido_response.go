package response

import (
	"estamparia_xpto/internal/domain/entities"
)

type PedidoResponse struct {
	Numero       string                   `json:"numero"`
	DataEnvio    string                   `json:"dataEnvio"`
	Fornecedor   string                   `json:"fornecedor"`
	Valor        string                   `json:"valor"`
	Custo        string                   `json:"custo,omitempty"`
	Tipo         string                   `json:"tipo"`
	Status       string                   `json:"status"`
	IDFechamento string                   `json:"idFechamento,omitempty"`
	Historico    []entities.HistoricoItem `json:"historico,omitempty"`
}

// ListaPedidosResponse is the GET /v1/pedidos body. Fornecedores carries the
// distinct supplier names (with "Todos" first) so the frontend filter does
// not have to derive them client-side.
type ListaPedidosResponse struct {
	Pedidos      []PedidoResponse `json:"pedidos"`
	Fornecedores []string         `json:"fornecedores"`
}

func FromPedido(p entities.Pedido) PedidoResponse {
	return PedidoResponse{
		Numero:       p.Numero,
		DataEnvio:    p.DataEnvio,
		Fornecedor:   p.Fornecedor,
		Valor:        p.Valor,
		Custo:        p.Custo,
		Tipo:         string(p.Tipo),
		Status:       string(p.StatusEfetivo()),
		IDFechamento: p.IDFechamento,
		Historico:    p.Historico,
	}
}

func FromPedidos(pedidos []entities.Pedido, fornecedores []string) ListaPedidosResponse {
	out := ListaPedidosResponse{
		Pedidos:      make([]PedidoResponse, 0, len(pedidos)),
		Fornecedores: fornecedores,
	}
	for _, p := range pedidos {
		out.Pedidos = append(out.Pedidos, FromPedido(p))
	}
	return out
}
