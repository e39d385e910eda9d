package entities

// HistoricoTipo tags the audit trail entry variants attached to a Pedido.

type HistoricoTipo string

const (
	HistoricoTipoCriacao      HistoricoTipo = "criacao"
	HistoricoTipoEdicao       HistoricoTipo = "edicao"
	HistoricoTipoCancelamento HistoricoTipo = "cancelamento"
	HistoricoTipoFechamento   HistoricoTipo = "fechamento"
)

// PedidoDelta is a partial snapshot of the mutable Pedido fields, used as
// the before/after payload of a HistoricoItem. Only the fields touched by
// the operation are set.

type PedidoDelta struct {
	Valor        string `json:"valor,omitempty"`
	Custo        string `json:"custo,omitempty"`
	Status       string `json:"status,omitempty"`
	IDFechamento string `json:"idFechamento,omitempty"`
}

// HistoricoItem is one append-only audit entry on a Pedido.
//
// Entries are never mutated or removed; the list order is the call order.
// Data is a client-side timestamp in milliseconds since epoch, matching the
// encoding of the migrated records.

type HistoricoItem struct {
	ID            string        `json:"id"`
	Tipo          HistoricoTipo `json:"tipo"`
	ValorAnterior *PedidoDelta  `json:"valorAnterior,omitempty"`
	ValorNovo     *PedidoDelta  `json:"valorNovo,omitempty"`
	Usuario       string        `json:"usuario"`
	Data          int64         `json:"data"`
}
