package entities

// BlingContato and BlingCategoria carry the statically configured routing
// identifiers Bling expects on an accounts-payable record.

type BlingContato struct {
	ID string `json:"id"`
}

type BlingCategoria struct {
	ID string `json:"id"`
}

// ContaPagar is the payable-invoice payload posted to the Bling ERP
// (POST /Api/v3/contas/pagar). Dates are ISO calendar dates without a time
// component; Valor is numeric, unlike the comma-decimal strings stored
// locally.

type ContaPagar struct {
	Vencimento  string         `json:"vencimento"`
	Valor       float64        `json:"valor"`
	Contato     BlingContato   `json:"contato"`
	Categoria   BlingCategoria `json:"categoria"`
	DataEmissao string         `json:"dataEmissao"`
	Competencia string         `json:"competencia"`
	Historico   string         `json:"historico"`
}

// BlingExchange is the raw record of one round trip to the Bling relay.
//
// RawResponse is always the body as received; ParsedResponse is a
// best-effort JSON decode kept nil when the body is not JSON. The relay's
// content-type is not trustworthy, so the raw text is the source of truth.

type BlingExchange struct {
	Status         int                    `json:"status"`
	StatusText     string                 `json:"statusText"`
	RawResponse    string                 `json:"raw_response"`
	ParsedResponse map[string]interface{} `json:"parsed_response,omitempty"`

	// CurlCommand is serialized at the LogBling level, not inside the
	// webhook_response block, to match the migrated log records.
	CurlCommand string `json:"-"`
}

// Sucesso reports whether Bling accepted the payable record.
func (e BlingExchange) Sucesso() bool {
	return e.Status == 200 || e.Status == 201
}

// LogBling is the forensic audit record appended to the logs table for
// every Bling exchange, success or failure.
//
// Storage model (DynamoDB):
//   - PK: id

type LogBling struct {
	ID          string        `json:"id"`
	Tipo        string        `json:"tipo"`
	Data        int64         `json:"data"`
	CurlCommand string        `json:"curl_command"`
	Webhook     BlingExchange `json:"webhook_response"`
}
