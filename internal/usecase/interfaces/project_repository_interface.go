package interfaces

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// IProjectRepository abstracts the Projects table.
//
// Not-found reads return a zero-value Project and a nil error; the usecase
// layer decides whether absence is an error.
type IProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	AssignQuoteID(ctx context.Context, id, quoteID string) error
}
