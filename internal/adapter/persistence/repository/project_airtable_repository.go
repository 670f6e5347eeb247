package repository

import (
	"context"
	"errors"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// Column names on the Projects table.
const (
	colProjectQuoteID         = "Quote ID"
	colProjectCustomerName    = "Customer Name"
	colProjectCustomerEmail   = "Customer Email"
	colProjectCustomerPhone   = "Customer Phone"
	colProjectCustomerAddress = "Customer Address"
	colProjectStatus          = "Project Status"
	colProjectEVMake          = "EV Make"
	colProjectEVModel         = "EV Model"
	colProjectInstallLocation = "Install Location"
	colProjectPermitRequired  = "Permit Required"
	colProjectPanelType       = "Panel Type"
	colProjectPanelCapacity   = "Panel Capacity"
	colProjectAvailableSlots  = "Available Slots"
	colProjectPanelAge        = "Panel Age"
)

// ProjectAirtableRepository maps Projects table rows to entities.
type ProjectAirtableRepository struct {
	client *airtable.Client
	table  string
}

var _ interfaces.IProjectRepository = (*ProjectAirtableRepository)(nil)

func NewProjectAirtableRepository(client *airtable.Client, table string) *ProjectAirtableRepository {
	return &ProjectAirtableRepository{client: client, table: table}
}

func (r *ProjectAirtableRepository) List(ctx context.Context) ([]entities.Project, error) {
	records, err := r.client.List(ctx, r.table, airtable.ListOptions{View: "Grid view"})
	if err != nil {
		return nil, err
	}
	projects := make([]entities.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, fromProjectRecord(rec))
	}
	return projects, nil
}

func (r *ProjectAirtableRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	rec, err := r.client.Get(ctx, r.table, id)
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return fromProjectRecord(rec), nil
}

func (r *ProjectAirtableRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	rec, err := r.client.Update(ctx, r.table, id, map[string]any{
		colProjectStatus: string(status),
	})
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return fromProjectRecord(rec), nil
}

func (r *ProjectAirtableRepository) AssignQuoteID(ctx context.Context, id, quoteID string) error {
	_, err := r.client.Update(ctx, r.table, id, map[string]any{
		colProjectQuoteID: quoteID,
	})
	return err
}

func fromProjectRecord(rec airtable.Record) entities.Project {
	f := rec.Fields
	return entities.Project{
		ID:              rec.ID,
		QuoteID:         stringField(f, colProjectQuoteID),
		CustomerName:    stringField(f, colProjectCustomerName),
		CustomerEmail:   stringField(f, colProjectCustomerEmail),
		CustomerPhone:   stringField(f, colProjectCustomerPhone),
		CustomerAddress: stringField(f, colProjectCustomerAddress),
		Status:          entities.ProjectStatus(stringField(f, colProjectStatus)),
		EVMake:          stringField(f, colProjectEVMake),
		EVModel:         stringField(f, colProjectEVModel),
		InstallLocation: stringField(f, colProjectInstallLocation),
		PermitRequired:  boolField(f, colProjectPermitRequired),
		PanelType:       stringField(f, colProjectPanelType),
		PanelCapacity:   numberFieldOr(f, colProjectPanelCapacity, 0),
		AvailableSlots:  intField(f, colProjectAvailableSlots),
		PanelAge:        stringField(f, colProjectPanelAge),
	}
}
