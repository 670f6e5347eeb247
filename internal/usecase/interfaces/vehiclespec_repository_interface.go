package interfaces

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// IVehicleSpecRepository resolves charging specs keyed by "<make> <model>".
// Lookups are case-sensitive by design.
type IVehicleSpecRepository interface {
	Resolve(ctx context.Context) (map[string]entities.VehicleSpec, error)
}
