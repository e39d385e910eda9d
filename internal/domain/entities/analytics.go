package entities

// PedidoAnalytics is a Pedido with its money fields already parsed and the
// derived margin figures computed.
//
// ResultadoPercentual is 0 (not 100) when the order has no custo: an
// unpriced order is "unset", not a 100% margin.

type PedidoAnalytics struct {
	Numero              string  `json:"numero"`
	DataEnvio           string  `json:"dataEnvio"`
	Fornecedor          string  `json:"fornecedor"`
	Valor               float64 `json:"valor"`
	Custo               float64 `json:"custo"`
	ResultadoBruto      float64 `json:"resultadoBruto"`
	ResultadoPercentual float64 `json:"resultadoPercentual"`
	Status              string  `json:"status,omitempty"`
	IDFechamento        string  `json:"idFechamento,omitempty"`
}

// FornecedorAnalytics is the per-supplier rollup.

type FornecedorAnalytics struct {
	Nome                string  `json:"nome"`
	TotalPedidos        int     `json:"totalPedidos"`
	ValorTotal          float64 `json:"valorTotal"`
	CustoTotal          float64 `json:"custoTotal"`
	ResultadoBruto      float64 `json:"resultadoBruto"`
	ResultadoPercentual float64 `json:"resultadoPercentual"`
	MaiorMargem         float64 `json:"maiorMargem"`
	MenorMargem         float64 `json:"menorMargem"`
}

// PeriodoAnalytics is the per-calendar-month rollup. Chave is the sortable
// "2006-01" key; Periodo the display name ("janeiro/2006").

type PeriodoAnalytics struct {
	Chave               string  `json:"-"`
	Periodo             string  `json:"periodo"`
	ValorTotal          float64 `json:"valorTotal"`
	CustoTotal          float64 `json:"custoTotal"`
	ResultadoBruto      float64 `json:"resultadoBruto"`
	ResultadoPercentual float64 `json:"resultadoPercentual"`
	Pedidos             int     `json:"pedidos"`
}

// KPIData is the global summary over the filtered order set.

type KPIData struct {
	TicketMedio    float64 `json:"ticketMedio"`
	MargemMedia    float64 `json:"margemMedia"`
	MaiorMargem    float64 `json:"maiorMargem"`
	MenorMargem    float64 `json:"menorMargem"`
	TotalPedidos   int     `json:"totalPedidos"`
	ValorTotal     float64 `json:"valorTotal"`
	ResultadoBruto float64 `json:"resultadoBruto"`
}
