package interfaces

import (
	"context"
	"estamparia_xpto/internal/domain/entities"
)

// IPedidoRepository abstracts DynamoDB persistence for Pedido.
//
// Historico is append-only: entries are added through AppendHistorico and
// there is no operation that rewrites or removes them.

type IPedidoRepository interface {
	List(ctx context.Context) ([]entities.Pedido, error)
	GetByNumero(ctx context.Context, numero string) (entities.Pedido, error)
	// SetFechado flips status to fechado and records the closure link in a
	// single atomic item update.
	SetFechado(ctx context.Context, numero, idFechamento string) error
	SetCancelado(ctx context.Context, numero string) error
	UpdateValores(ctx context.Context, numero, valor, custo string) error
	AppendHistorico(ctx context.Context, numero string, item entities.HistoricoItem) error
}
