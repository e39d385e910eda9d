package erp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estamparia_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contaDeTeste() entities.ContaPagar {
	return entities.ContaPagar{
		Vencimento:  "2024-06-12",
		Valor:       150,
		Contato:     entities.BlingContato{ID: "16949456496"},
		Categoria:   entities.BlingCategoria{ID: "14690272874"},
		DataEmissao: "2024-06-10",
		Competencia: "2024-06-10",
		Historico:   "Fechamento fornecedor Foo - 2024-06-10",
	}
}

func TestNewBlingGateway_MissingURL(t *testing.T) {
	_, err := NewBlingGateway("  ")
	require.ErrorIs(t, err, ErrMissingBlingProxyURL)
}

func TestBlingGateway_CriarContaPagar(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody entities.ContaPagar

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":987}}`))
	}))
	defer srv.Close()

	g, err := NewBlingGateway(srv.URL)
	require.NoError(t, err)

	exchange, err := g.CriarContaPagar(context.Background(), "tok-123", contaDeTeste())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, contasPagarPath, gotPath)
	assert.Equal(t, 150.0, gotBody.Valor)
	assert.Equal(t, "2024-06-12", gotBody.Vencimento)

	assert.Equal(t, http.StatusCreated, exchange.Status)
	assert.True(t, exchange.Sucesso())
	assert.Equal(t, `{"data":{"id":987}}`, exchange.RawResponse)
	require.NotNil(t, exchange.ParsedResponse)
	assert.Contains(t, exchange.ParsedResponse, "data")
	assert.Contains(t, exchange.CurlCommand, "curl -X POST")
	assert.Contains(t, exchange.CurlCommand, "Bearer tok-123")
	assert.Contains(t, exchange.CurlCommand, contasPagarPath)
}

// A plain-text error body must survive as raw text; the failed JSON parse
// is not an error.
func TestBlingGateway_CriarContaPagar_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	g, err := NewBlingGateway(srv.URL)
	require.NoError(t, err)

	exchange, err := g.CriarContaPagar(context.Background(), "tok", contaDeTeste())
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, exchange.Status)
	assert.False(t, exchange.Sucesso())
	assert.Equal(t, "upstream exploded", exchange.RawResponse)
	assert.Nil(t, exchange.ParsedResponse)
}

func TestBlingGateway_CriarContaPagar_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections on purpose

	g, err := NewBlingGateway(srv.URL)
	require.NoError(t, err)

	_, err = g.CriarContaPagar(context.Background(), "tok", contaDeTeste())
	require.Error(t, err)
}
