package interfaces

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned by Resolve for unknown tokens.
var ErrTokenNotFound = errors.New("shareable link token not found")

// ILinkStore maps shareable-link tokens to quote ids. Put mints a fresh
// token for the quote id, replacing any previous one.
type ILinkStore interface {
	Put(ctx context.Context, quoteID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
}
