package interfaces

import (
	"context"
	"estamparia_xpto/internal/domain/entities"
)

// IERPGateway abstracts the Bling relay used to register payable invoices.
//
// A non-nil BlingExchange is returned whenever the relay answered at all,
// even with an error status; the caller decides what a rejection means. An
// error return means the relay was unreachable and no exchange happened.

type IERPGateway interface {
	CriarContaPagar(ctx context.Context, apiKey string, conta entities.ContaPagar) (entities.BlingExchange, error)
}
