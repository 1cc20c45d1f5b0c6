package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

const (
	sessionCollection  = "sessions"
	defaultIdleTimeout = 30 * time.Minute
)

// SessionStore keeps sessions in a MongoDB collection. A TTL index on
// expires_at lets the server reap idle sessions; reads also filter on it
// because the TTL monitor only runs about once a minute.
type SessionStore struct {
	coll *mongo.Collection
	idle time.Duration
	now  func() time.Time
}

func NewSessionStore(db *mongo.Database, idle time.Duration) *SessionStore {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &SessionStore{coll: db.Collection(sessionCollection), idle: idle, now: time.Now}
}

type mongoSession struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"token"`
	Username  string    `bson:"username"`
	FullName  string    `bson:"full_name"`
	Role      string    `bson:"role"`
	Email     string    `bson:"email"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// EnsureIndexes creates the TTL index used for idle expiry.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetName("session_idle_ttl"),
	})
	if err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	now := s.now().UTC()
	filter := bson.M{"_id": sessionID, "expires_at": bson.M{"$gt": now}}
	update := bson.M{"$set": bson.M{"expires_at": now.Add(s.idle)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoSession
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	state := domain.SessionState{
		Token:    doc.Token,
		Username: doc.Username,
		FullName: doc.FullName,
		Role:     doc.Role,
		Email:    doc.Email,
	}
	if !state.Complete() {
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID string, state domain.SessionState) error {
	if !state.Complete() {
		return domain.ErrIncompleteSession
	}

	doc := mongoSession{
		ID:        sessionID,
		Token:     state.Token,
		Username:  state.Username,
		FullName:  state.FullName,
		Role:      state.Role,
		Email:     state.Email,
		ExpiresAt: s.now().UTC().Add(s.idle),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": sessionID}, doc, opts); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping checks MongoDB connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
