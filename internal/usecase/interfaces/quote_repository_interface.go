package interfaces

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// IQuoteRepository abstracts the Quotes table.
//
// Version records are append-only: SaveVersion never mutates an existing
// record, and UpdateStatusByQuoteID only touches the status column of the
// current (highest-version) record for the quote id.
type IQuoteRepository interface {
	SaveVersion(ctx context.Context, quote entities.Quote, version int, modifiedBy string) (entities.QuoteVersion, error)
	Versions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error)
	ListAll(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteVersion, error)
	UpdateStatusByQuoteID(ctx context.Context, quoteID string, status entities.QuoteStatus) error
}
