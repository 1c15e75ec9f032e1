package store

import (
	"context"
	"sync"
	"time"

	"github.com/conclusiv/conclusiv/pkg/narrative"
)

// MemStore is an in-memory store for development, testing, and CLI preview.
// It is safe for concurrent use.
type MemStore struct {
	mu         sync.RWMutex
	narratives map[string]*narrative.Narrative
	shares     map[string]*Share
	order      []string // insertion order of narrative IDs
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		narratives: make(map[string]*narrative.Narrative),
		shares:     make(map[string]*Share),
	}
}

// SaveNarrative stores a narrative, assigning an ID when needed.
func (s *MemStore) SaveNarrative(ctx context.Context, n *narrative.Narrative) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = NewID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if _, exists := s.narratives[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.narratives[n.ID] = cloneNarrative(n)
	return n.ID, nil
}

// GetNarrative retrieves a narrative by ID.
func (s *MemStore) GetNarrative(ctx context.Context, id string) (*narrative.Narrative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.narratives[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneNarrative(n), nil
}

// DeleteNarrative removes a narrative and its shares.
func (s *MemStore) DeleteNarrative(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.narratives[id]; !ok {
		return ErrNotFound
	}
	delete(s.narratives, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for token, share := range s.shares {
		if share.NarrativeID == id {
			delete(s.shares, token)
		}
	}
	return nil
}

// ListNarratives returns all narratives, newest first.
func (s *MemStore) ListNarratives(ctx context.Context) ([]*narrative.Narrative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*narrative.Narrative, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, cloneNarrative(s.narratives[s.order[i]]))
	}
	return out, nil
}

// CreateShare creates a share link for a stored narrative.
func (s *MemStore) CreateShare(ctx context.Context, narrativeID, template string, ttl time.Duration) (*Share, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.narratives[narrativeID]; !ok {
		return nil, ErrNotFound
	}
	share := NewShare(narrativeID, template, ttl)
	s.shares[share.Token] = share

	out := *share
	return &out, nil
}

// GetShare retrieves a share by token, expiring lazily.
func (s *MemStore) GetShare(ctx context.Context, token string) (*Share, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	share, ok := s.shares[token]
	if !ok {
		return nil, ErrShareNotFound
	}
	if share.IsExpired() {
		delete(s.shares, token)
		return nil, ErrShareNotFound
	}
	out := *share
	return &out, nil
}

// Close does nothing for the in-memory store.
func (s *MemStore) Close(ctx context.Context) error {
	return nil
}

// cloneNarrative copies a narrative so callers cannot mutate stored state.
func cloneNarrative(n *narrative.Narrative) *narrative.Narrative {
	out := *n
	out.Sections = make([]narrative.Section, len(n.Sections))
	copy(out.Sections, n.Sections)
	for i, sec := range out.Sections {
		if sec.Items != nil {
			items := make([]string, len(sec.Items))
			copy(items, sec.Items)
			out.Sections[i].Items = items
		}
	}
	return &out
}

// Ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)
