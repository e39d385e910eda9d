package entities

// PedidoStatus represents the order lifecycle.
//
// An order with an empty status is treated as active; that is how legacy
// records were stored before the status field existed.

type PedidoStatus string

const (
	PedidoStatusAtivo     PedidoStatus = "ativo"
	PedidoStatusFechado   PedidoStatus = "fechado"
	PedidoStatusCancelado PedidoStatus = "cancelado"
)

// PedidoTipo distinguishes custom-printed orders from resale ones.
// Only "personalizada" orders participate in supplier closures.

type PedidoTipo string

const (
	PedidoTipoPersonalizada PedidoTipo = "personalizada"
	PedidoTipoRevenda       PedidoTipo = "revenda"
)

// Pedido is a screen-printing order (pedido) tracked by the dashboard.
//
// Storage model (DynamoDB):
//   - PK: numero
//
// Monetary representation:
//   - Valor and Custo are comma-decimal strings ("150,00") to stay
//     byte-compatible with the records migrated from the original store.
//   - An empty Custo means the order has not been priced by the supplier yet.

type Pedido struct {
	Numero       string          `json:"numero"`
	DataEnvio    string          `json:"dataEnvio"`
	Fornecedor   string          `json:"fornecedor"`
	Valor        string          `json:"valor"`
	Custo        string          `json:"custo,omitempty"`
	Tipo         PedidoTipo      `json:"tipo"`
	Status       PedidoStatus    `json:"status,omitempty"`
	IDFechamento string          `json:"idFechamento,omitempty"`
	Historico    []HistoricoItem `json:"historico,omitempty"`
}

// StatusEfetivo normalizes the legacy empty status to ativo.
func (p Pedido) StatusEfetivo() PedidoStatus {
	if p.Status == "" {
		return PedidoStatusAtivo
	}
	return p.Status
}

// Fechavel reports whether the order can still enter a supplier closure.
func (p Pedido) Fechavel() bool {
	return p.Tipo == PedidoTipoPersonalizada &&
		p.StatusEfetivo() != PedidoStatusCancelado &&
		p.IDFechamento == ""
}
