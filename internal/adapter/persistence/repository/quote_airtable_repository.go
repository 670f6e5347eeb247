package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// Column names on the Quotes table.
const (
	colQuoteID            = "Quote ID"
	colQuoteProjectID     = "Project ID"
	colQuoteCustomerName  = "Customer Name"
	colQuoteCustomerEmail = "Customer Email"
	colQuoteTotalAmount   = "Total Amount"
	colQuoteData          = "Quote Data"
	colQuoteStatus        = "Status"
	colQuoteDateCreated   = "Date Created"
	colQuoteVersion       = "Version"
	colQuoteModifiedBy    = "Modified By"
)

// QuoteAirtableRepository persists quote version records. Records are
// append-only snapshots; the full Quote document is stored as a JSON payload
// in the "Quote Data" column alongside a few denormalized list columns.
type QuoteAirtableRepository struct {
	client *airtable.Client
	table  string
	logger zerolog.Logger
}

var _ interfaces.IQuoteRepository = (*QuoteAirtableRepository)(nil)

func NewQuoteAirtableRepository(client *airtable.Client, table string, logger zerolog.Logger) *QuoteAirtableRepository {
	return &QuoteAirtableRepository{client: client, table: table, logger: logger}
}

func (r *QuoteAirtableRepository) SaveVersion(ctx context.Context, quote entities.Quote, version int, modifiedBy string) (entities.QuoteVersion, error) {
	payload, err := json.Marshal(quote)
	if err != nil {
		return entities.QuoteVersion{}, fmt.Errorf("encoding quote payload: %w", err)
	}

	rec, err := r.client.Create(ctx, r.table, map[string]any{
		colQuoteID:            quote.QuoteID,
		colQuoteProjectID:     quote.ProjectID,
		colQuoteCustomerName:  quote.Customer.Name,
		colQuoteCustomerEmail: quote.Customer.Email,
		colQuoteTotalAmount:   quote.Pricing.Total,
		colQuoteData:          string(payload),
		colQuoteStatus:        string(quote.Status),
		colQuoteDateCreated:   time.Now().UTC().Format(time.RFC3339),
		colQuoteVersion:       version,
		colQuoteModifiedBy:    modifiedBy,
	})
	if err != nil {
		return entities.QuoteVersion{}, err
	}
	return r.fromQuoteRecord(rec), nil
}

func (r *QuoteAirtableRepository) Versions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error) {
	records, err := r.client.List(ctx, r.table, airtable.ListOptions{
		FilterByFormula: quoteIDFilter(quoteID),
		Sort:            []airtable.SortField{{Field: colQuoteVersion, Direction: "desc"}},
	})
	if err != nil {
		return nil, err
	}
	return r.fromQuoteRecords(records), nil
}

func (r *QuoteAirtableRepository) ListAll(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteVersion, error) {
	opts := airtable.ListOptions{
		Sort: []airtable.SortField{{Field: colQuoteDateCreated, Direction: "desc"}},
	}
	if status != "" {
		opts.FilterByFormula = fmt.Sprintf("{%s} = '%s'", colQuoteStatus, escapeFormulaValue(string(status)))
	}

	records, err := r.client.List(ctx, r.table, opts)
	if err != nil {
		return nil, err
	}
	return r.fromQuoteRecords(records), nil
}

// UpdateStatusByQuoteID patches the status column of the current
// (highest-version) record for the quote id. Missing quotes are a no-op.
func (r *QuoteAirtableRepository) UpdateStatusByQuoteID(ctx context.Context, quoteID string, status entities.QuoteStatus) error {
	versions, err := r.Versions(ctx, quoteID)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		return nil
	}

	current := versions[0]
	for _, v := range versions[1:] {
		if v.Version > current.Version {
			current = v
		}
	}

	_, err = r.client.Update(ctx, r.table, current.RecordID, map[string]any{
		colQuoteStatus: string(status),
	})
	return err
}

func (r *QuoteAirtableRepository) fromQuoteRecords(records []airtable.Record) []entities.QuoteVersion {
	versions := make([]entities.QuoteVersion, 0, len(records))
	for _, rec := range records {
		versions = append(versions, r.fromQuoteRecord(rec))
	}
	return versions
}

func (r *QuoteAirtableRepository) fromQuoteRecord(rec airtable.Record) entities.QuoteVersion {
	f := rec.Fields

	// A payload that fails to parse yields a nil Quote rather than failing
	// the whole listing.
	var quote *entities.Quote
	if raw := stringField(f, colQuoteData); raw != "" {
		var parsed entities.Quote
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			r.logger.Warn().Err(err).Str("record_id", rec.ID).Msg("malformed quote payload")
		} else {
			quote = &parsed
		}
	}

	dateCreated, _ := time.Parse(time.RFC3339, stringField(f, colQuoteDateCreated))

	version := intField(f, colQuoteVersion)
	if version == 0 {
		version = 1
	}

	return entities.QuoteVersion{
		RecordID:      rec.ID,
		QuoteID:       stringField(f, colQuoteID),
		ProjectID:     stringField(f, colQuoteProjectID),
		CustomerName:  stringField(f, colQuoteCustomerName),
		CustomerEmail: stringField(f, colQuoteCustomerEmail),
		TotalAmount:   numberFieldOr(f, colQuoteTotalAmount, 0),
		Quote:         quote,
		Status:        entities.QuoteStatus(stringField(f, colQuoteStatus)),
		DateCreated:   dateCreated,
		Version:       version,
		ModifiedBy:    stringFieldOr(f, colQuoteModifiedBy, "Unknown"),
	}
}

func quoteIDFilter(quoteID string) string {
	return fmt.Sprintf("{%s} = '%s'", colQuoteID, escapeFormulaValue(quoteID))
}

func escapeFormulaValue(v string) string {
	return strings.ReplaceAll(v, "'", "\\'")
}
