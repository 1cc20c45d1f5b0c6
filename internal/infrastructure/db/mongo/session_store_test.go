package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

func sessionDoc(id string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "token", Value: "demo-token-abc"},
		{Key: "username", Value: "admin1"},
		{Key: "full_name", Value: "Carol Williams"},
		{Key: "role", Value: domain.RoleAdmin},
		{Key: "email", Value: "carol.williams@demo.com"},
		{Key: "expires_at", Value: time.Now().Add(time.Hour)},
	}
}

func TestSessionStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get returns stored state", func(mt *mtest.T) {
		s := NewSessionStore(mt.DB, time.Minute)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: sessionDoc("sid")}))

		got, err := s.Get(context.Background(), "sid")
		if err != nil {
			mt.Fatalf("get: %v", err)
		}
		if got.Username != "admin1" || got.FullName != "Carol Williams" || got.Role != domain.RoleAdmin {
			mt.Fatalf("unexpected state: %+v", got)
		}
	})

	mt.Run("get missing session", func(mt *mtest.T) {
		s := NewSessionStore(mt.DB, time.Minute)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		if _, err := s.Get(context.Background(), "nope"); err != domain.ErrSessionNotFound {
			mt.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	mt.Run("set upserts", func(mt *mtest.T) {
		s := NewSessionStore(mt.DB, time.Minute)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		state := domain.SessionState{Token: "t", Username: "u", FullName: "f", Role: "r", Email: "e"}
		if err := s.Set(context.Background(), "sid", state); err != nil {
			mt.Fatalf("set: %v", err)
		}
	})

	mt.Run("set rejects incomplete state", func(mt *mtest.T) {
		s := NewSessionStore(mt.DB, time.Minute)

		if err := s.Set(context.Background(), "sid", domain.SessionState{Token: "t"}); err != domain.ErrIncompleteSession {
			mt.Fatalf("expected ErrIncompleteSession, got %v", err)
		}
	})

	mt.Run("clear deletes", func(mt *mtest.T) {
		s := NewSessionStore(mt.DB, time.Minute)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		if err := s.Clear(context.Background(), "sid"); err != nil {
			mt.Fatalf("clear: %v", err)
		}
	})
}
