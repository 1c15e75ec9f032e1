package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conclusiv/conclusiv/pkg/narrative"
)

// MongoStore is a MongoDB-backed store for server deployments.
type MongoStore struct {
	client     *mongo.Client
	narratives *mongo.Collection
	shares     *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the collections.
// It pings the server once so misconfiguration surfaces at startup.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(database)
	return &MongoStore{
		client:     client,
		narratives: db.Collection("narratives"),
		shares:     db.Collection("shares"),
	}, nil
}

// SaveNarrative upserts a narrative document, stamping CreatedAt when the
// narrative carries none.
func (s *MongoStore) SaveNarrative(ctx context.Context, n *narrative.Narrative) (string, error) {
	if n.ID == "" {
		n.ID = NewID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := s.narratives.ReplaceOne(ctx,
		bson.M{"_id": n.ID}, n, options.Replace().SetUpsert(true))
	if err != nil {
		return "", err
	}
	return n.ID, nil
}

// GetNarrative retrieves a narrative by ID.
func (s *MongoStore) GetNarrative(ctx context.Context, id string) (*narrative.Narrative, error) {
	var n narrative.Narrative
	err := s.narratives.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// DeleteNarrative removes a narrative and its shares.
func (s *MongoStore) DeleteNarrative(ctx context.Context, id string) error {
	res, err := s.narratives.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	_, err = s.shares.DeleteMany(ctx, bson.M{"narrative_id": id})
	return err
}

// ListNarratives returns all narratives, newest first. IDs are random
// UUIDs, so recency comes from the CreatedAt stamp, not the key.
func (s *MongoStore) ListNarratives(ctx context.Context) ([]*narrative.Narrative, error) {
	cur, err := s.narratives.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*narrative.Narrative
	for cur.Next(ctx) {
		var n narrative.Narrative
		if err := cur.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, cur.Err()
}

// CreateShare creates a share link for a stored narrative.
func (s *MongoStore) CreateShare(ctx context.Context, narrativeID, template string, ttl time.Duration) (*Share, error) {
	// Verify the narrative exists before minting a token for it.
	if _, err := s.GetNarrative(ctx, narrativeID); err != nil {
		return nil, err
	}

	share := NewShare(narrativeID, template, ttl)
	if _, err := s.shares.InsertOne(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

// GetShare retrieves a share by token, expiring lazily.
func (s *MongoStore) GetShare(ctx context.Context, token string) (*Share, error) {
	var share Share
	err := s.shares.FindOne(ctx, bson.M{"_id": token}).Decode(&share)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, err
	}
	if share.IsExpired() {
		_, _ = s.shares.DeleteOne(ctx, bson.M{"_id": token})
		return nil, ErrShareNotFound
	}
	return &share, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
