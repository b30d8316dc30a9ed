package ports

import (
	"context"

	"github.com/arebot/horasbot/internal/domain"
)

// Interpreter turns a free-text chat message into a typed intent.
type Interpreter interface {
	Interpret(ctx context.Context, message string) (domain.Intent, error)
}
