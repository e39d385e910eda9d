package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDataPagamento = errors.New("invalid dataPagamento")

// GerarFechamentoRequest is the payload of POST /v1/fechamentos.
//
// DataPagamento is an ISO calendar date ("2006-01-02"), the same encoding
// the frontend date picker produces.
type GerarFechamentoRequest struct {
	Numeros       []string `json:"numeros" binding:"required"`
	DataPagamento string   `json:"dataPagamento" binding:"required"`
}

func (r GerarFechamentoRequest) ResolveNumeros() []string {
	out := make([]string, 0, len(r.Numeros))
	for _, n := range r.Numeros {
		if v := strings.TrimSpace(n); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r GerarFechamentoRequest) ResolveDataPagamento() (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(r.DataPagamento))
	if err != nil {
		return time.Time{}, ErrInvalidDataPagamento
	}
	return t, nil
}
