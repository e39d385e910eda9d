package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"estamparia_xpto/internal/domain/entities"
	"estamparia_xpto/internal/usecase/interfaces"
)

const contasPagarPath = "/Api/v3/contas/pagar"

var ErrMissingBlingProxyURL = errors.New("missing BLING_PROXY_URL")

// BlingGateway posts payable invoices to the Bling ERP through the CORS
// relay. The relay passes the ERP's status and body through unmodified and
// its content-type is not reliable, so the body is always read as raw text
// before a best-effort JSON parse.

type BlingGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IERPGateway = (*BlingGateway)(nil)

func NewBlingGateway(baseURL string) (*BlingGateway, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[bling][gateway] missing BLING_PROXY_URL")
		return nil, ErrMissingBlingProxyURL
	}
	log.Printf("[bling][gateway] client initialized base_url=%s", baseURL)
	return &BlingGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *BlingGateway) CriarContaPagar(ctx context.Context, apiKey string, conta entities.ContaPagar) (entities.BlingExchange, error) {
	body, err := json.Marshal(conta)
	if err != nil {
		return entities.BlingExchange{}, err
	}
	log.Printf("[bling][gateway] create start payload_len=%d", len(body))

	url := g.baseURL + contasPagarPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.BlingExchange{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[bling][gateway] request failed err=%v", err)
		return entities.BlingExchange{}, err
	}
	defer resp.Body.Close()

	raw := new(bytes.Buffer)
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		log.Printf("[bling][gateway] response read failed err=%v", err)
		return entities.BlingExchange{}, err
	}
	rawText := raw.String()

	// Parse failure is non-fatal; the raw text is what gets audited.
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		parsed = nil
	}

	exchange := entities.BlingExchange{
		Status:         resp.StatusCode,
		StatusText:     http.StatusText(resp.StatusCode),
		RawResponse:    rawText,
		ParsedResponse: parsed,
		CurlCommand:    curlContaPagar(url, apiKey, conta),
	}
	log.Printf("[bling][gateway] create done status=%d body_len=%d", exchange.Status, len(rawText))
	return exchange, nil
}

// curlContaPagar reconstructs the outbound request as a curl command for
// the forensic log, so a human can replay the exact call while debugging.
func curlContaPagar(url, apiKey string, conta entities.ContaPagar) string {
	pretty, err := json.MarshalIndent(conta, "", "  ")
	if err != nil {
		pretty = []byte("{}")
	}
	return fmt.Sprintf(`curl -X POST '%s' \
  -H 'Accept: application/json' \
  -H 'Content-Type: application/json' \
  -H 'Authorization: Bearer %s' \
  -d '%s'`, url, apiKey, pretty)
}
