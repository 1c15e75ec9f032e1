// Package store provides persistence for narratives and share links.
//
// This package defines the storage interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing and CLI preview
//   - mongo: MongoDB-backed storage for server deployments
//
// # Architecture
//
// Narratives are stored as documents keyed by UUID. Share links map an
// unguessable token to a narrative plus the template it was shared with,
// so a share renders the same presentation its author saw. Shares carry
// an optional expiration; expired shares resolve to ErrShareNotFound.
//
// # Usage
//
//	// Development
//	st := store.NewMemStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "conclusiv")
//
//	id, err := st.SaveNarrative(ctx, n)
//	share, err := st.CreateShare(ctx, id, "zoom_reveal", store.DefaultShareTTL)
//	n, template, err := st.ResolveShare(ctx, share.Token)
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/conclusiv/conclusiv/pkg/narrative"
)

// Sentinel errors for storage operations.
var (
	// ErrNotFound is returned when a narrative does not exist.
	ErrNotFound = errors.New("narrative not found")

	// ErrShareNotFound is returned when a share token does not resolve,
	// including when the share exists but has expired.
	ErrShareNotFound = errors.New("share not found")
)

// DefaultShareTTL is the default share link lifetime. Zero TTL means the
// share never expires.
const DefaultShareTTL = 30 * 24 * time.Hour

// Share maps a public token to a stored narrative.
type Share struct {
	Token       string    `json:"token" bson:"_id"`
	NarrativeID string    `json:"narrative_id" bson:"narrative_id"`
	Template    string    `json:"template,omitempty" bson:"template,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

// IsExpired returns true if the share has expired.
// Shares with a zero ExpiresAt never expire.
func (s *Share) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Store is the interface for narrative storage backends.
type Store interface {
	// SaveNarrative stores a narrative and returns its ID.
	// A narrative without an ID is assigned a fresh one; saving with an
	// existing ID overwrites that document. A zero CreatedAt is stamped
	// with the save time.
	SaveNarrative(ctx context.Context, n *narrative.Narrative) (string, error)

	// GetNarrative retrieves a narrative by ID.
	// Returns ErrNotFound if it does not exist.
	GetNarrative(ctx context.Context, id string) (*narrative.Narrative, error)

	// DeleteNarrative removes a narrative and any shares pointing at it.
	DeleteNarrative(ctx context.Context, id string) error

	// ListNarratives returns all stored narratives, newest first.
	ListNarratives(ctx context.Context) ([]*narrative.Narrative, error)

	// CreateShare creates a share link for a stored narrative.
	// Returns ErrNotFound if the narrative does not exist.
	CreateShare(ctx context.Context, narrativeID, template string, ttl time.Duration) (*Share, error)

	// GetShare retrieves a share by token.
	// Returns ErrShareNotFound if it does not exist or has expired.
	GetShare(ctx context.Context, token string) (*Share, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// ResolveShare loads the narrative behind a share token and the template it
// was shared with. It is a convenience shared by all backends.
func ResolveShare(ctx context.Context, st Store, token string) (*narrative.Narrative, string, error) {
	share, err := st.GetShare(ctx, token)
	if err != nil {
		return nil, "", err
	}
	n, err := st.GetNarrative(ctx, share.NarrativeID)
	if err != nil {
		// The narrative was deleted out from under the share.
		return nil, "", ErrShareNotFound
	}
	return n, share.Template, nil
}

// NewID generates a narrative or share identifier.
func NewID() string {
	return uuid.NewString()
}

// NewShare builds a share record for a narrative.
func NewShare(narrativeID, template string, ttl time.Duration) *Share {
	s := &Share{
		Token:       NewID(),
		NarrativeID: narrativeID,
		Template:    template,
		CreatedAt:   time.Now(),
	}
	if ttl > 0 {
		s.ExpiresAt = s.CreatedAt.Add(ttl)
	}
	return s
}
