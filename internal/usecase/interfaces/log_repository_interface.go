package interfaces

import (
	"context"
	"estamparia_xpto/internal/domain/entities"
)

// ILogRepository abstracts the append-only logs table that keeps the raw
// Bling request/response exchanges for forensic audit.

type ILogRepository interface {
	Append(ctx context.Context, l entities.LogBling) (entities.LogBling, error)
}
