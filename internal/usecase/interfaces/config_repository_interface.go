package interfaces

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// IConfigRepository resolves the singleton company configuration.
//
// Resolve returns the documented default config when no row exists; it only
// errors when the store itself is unreachable.
type IConfigRepository interface {
	Resolve(ctx context.Context) (entities.CompanyConfig, error)
}
