package interfaces

import (
	"context"
	"estamparia_xpto/internal/domain/entities"
)

// IFechamentoRepository abstracts DynamoDB persistence for Fechamento.
//
// Closures are created exactly once and never deleted; List returns them
// for the history view.

type IFechamentoRepository interface {
	Create(ctx context.Context, f entities.Fechamento) (entities.Fechamento, error)
	GetByID(ctx context.Context, id string) (entities.Fechamento, error)
	List(ctx context.Context) ([]entities.Fechamento, error)
}
