package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

var ErrInvalidProjectStatus = errors.New("invalid project status")

// IProjectUseCase exposes the contractor-dashboard read operations plus the
// direct project status update.
type IProjectUseCase interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	UpdateProjectStatus(ctx context.Context, id, status string) (entities.Project, error)
	ListPhotos(ctx context.Context, projectID string) ([]entities.Photo, error)
	CompanyConfig(ctx context.Context) (entities.CompanyConfig, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	photos   interfaces.IPhotoRepository
	config   interfaces.IConfigRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	photos interfaces.IPhotoRepository,
	config interfaces.IConfigRepository,
) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, photos: photos, config: config}
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.projects.List(ctx)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (u *ProjectUseCase) UpdateProjectStatus(ctx context.Context, id, status string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	project, err := u.projects.UpdateStatus(ctx, id, entities.ProjectStatus(status))
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (u *ProjectUseCase) ListPhotos(ctx context.Context, projectID string) ([]entities.Photo, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.photos.ListByProject(ctx, projectID)
}

func (u *ProjectUseCase) CompanyConfig(ctx context.Context) (entities.CompanyConfig, error) {
	return u.config.Resolve(ctx)
}
