// Package links provides the default in-process shareable-link store.
package links

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// MemoryStore keeps token mappings in process memory. Tokens do not survive
// a restart; deployments that need durable links use the DynamoDB store.
type MemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]string
	byQuote map[string]string
}

var _ interfaces.ILinkStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]string),
		byQuote: make(map[string]string),
	}
}

// Put mints a fresh token for the quote id. Any previously minted token for
// the same quote stops resolving.
func (s *MemoryStore) Put(_ context.Context, quoteID string) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byQuote[quoteID]; ok {
		delete(s.byToken, old)
	}
	s.byQuote[quoteID] = token
	s.byToken[token] = quoteID
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quoteID, ok := s.byToken[token]
	if !ok {
		return "", interfaces.ErrTokenNotFound
	}
	return quoteID, nil
}
