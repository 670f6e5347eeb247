package interfaces

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// IPhotoRepository abstracts the Photos table.
type IPhotoRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]entities.Photo, error)
}
