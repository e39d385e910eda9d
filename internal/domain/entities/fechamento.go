package entities

import "time"

// FechamentoLogTipo tags entries in a Fechamento's embedded log.
//
// Only criacao has a write path today; edicao/cancelamento exist for the
// records that may gain them later.

type FechamentoLogTipo string

const (
	FechamentoLogTipoCriacao      FechamentoLogTipo = "criacao"
	FechamentoLogTipoEdicao       FechamentoLogTipo = "edicao"
	FechamentoLogTipoCancelamento FechamentoLogTipo = "cancelamento"
)

// FechamentoLog is one entry of the closure's own audit log.

type FechamentoLog struct {
	Tipo     FechamentoLogTipo `json:"tipo"`
	Usuario  string            `json:"usuario"`
	Data     int64             `json:"data"`
	Detalhes string            `json:"detalhes"`
}

// PedidoResumo is the per-order snapshot captured at closure time.
//
// It is immutable after creation: later edits to the underlying Pedido do
// not reach back into the closure record.

type PedidoResumo struct {
	NumeroPedido string `json:"numeroPedido"`
	Custo        string `json:"custo"`
	DataEnvio    string `json:"dataEnvio"`
}

// BlingRegistro records the accounts-payable registration at the Bling ERP.
//
// IDContasPagar holds a TEMP_<unix-ms> placeholder: the relay response
// cannot be reliably correlated to an authoritative Bling record id.

type BlingRegistro struct {
	Registrado    bool   `json:"registrado"`
	IDContasPagar string `json:"idContasPagar"`
	DataRegistro  string `json:"dataRegistro"`
}

// Fechamento is a supplier closure (fechamento de fornecedor): a batch
// settlement grouping same-supplier orders paid together.
//
// Storage model (DynamoDB):
//   - PK: id
//
// DataPagamento stores the due date sent to Bling (ISO calendar date);
// ValorTotal keeps the comma-decimal string encoding of the display locale.

type Fechamento struct {
	ID            string          `json:"id"`
	Fornecedor    string          `json:"fornecedor"`
	DataPagamento string          `json:"dataPagamento"`
	ValorTotal    string          `json:"valorTotal"`
	Pedidos       []PedidoResumo  `json:"pedidos"`
	Usuario       string          `json:"usuario"`
	DataRegistro  time.Time       `json:"dataRegistro"`
	Log           []FechamentoLog `json:"log"`
	BlingRegistro *BlingRegistro  `json:"blingRegistro,omitempty"`
}
