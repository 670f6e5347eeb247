package repository

import (
	"context"
	"fmt"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// PhotoAirtableRepository maps Photos table rows to entities. Photos link to
// projects through a linked-record column, so lookups go through a formula
// filter rather than a record id.
type PhotoAirtableRepository struct {
	client *airtable.Client
	table  string
}

var _ interfaces.IPhotoRepository = (*PhotoAirtableRepository)(nil)

func NewPhotoAirtableRepository(client *airtable.Client, table string) *PhotoAirtableRepository {
	return &PhotoAirtableRepository{client: client, table: table}
}

type photoAttachment struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Filename   string `json:"filename"`
	Thumbnails struct {
		Large struct {
			URL string `json:"url"`
		} `json:"large"`
	} `json:"thumbnails"`
}

func (r *PhotoAirtableRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Photo, error) {
	filter := fmt.Sprintf("FIND('%s', ARRAYJOIN({Project}))", projectID)
	records, err := r.client.List(ctx, r.table, airtable.ListOptions{FilterByFormula: filter})
	if err != nil {
		return nil, err
	}

	photos := make([]entities.Photo, 0, len(records))
	for _, rec := range records {
		var attachments []photoAttachment
		decodeJSONField(rec.Fields, "File", &attachments)

		files := make([]entities.PhotoFile, 0, len(attachments))
		for _, a := range attachments {
			files = append(files, entities.PhotoFile{
				URL:          a.URL,
				Filename:     a.Filename,
				ThumbnailURL: a.Thumbnails.Large.URL,
			})
		}
		photos = append(photos, entities.Photo{
			ID:        rec.ID,
			PhotoType: stringField(rec.Fields, "Photo Type"),
			Files:     files,
		})
	}
	return photos, nil
}
