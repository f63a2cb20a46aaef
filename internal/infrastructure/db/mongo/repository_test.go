package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func emptyCursor(ns string) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns sequential id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(
			emptyCursor("db.users"),
			emptyCursor("db.users"),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "_id", Value: "users"}, {Key: "seq", Value: int64(7)}}}),
			mtest.CreateSuccessResponse(),
		)

		user, err := repo.Create(context.Background(), &domain.User{Username: "alice", Email: "a@x.com", PasswordHash: "h", CreatedAt: time.Now()})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if user.ID != 7 {
			t.Fatalf("expected id 7, got %d", user.ID)
		}
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.users", mtest.FirstBatch, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(1)}}))

		_, err := repo.Create(context.Background(), &domain.User{Username: "alice", Email: "a@x.com"})
		if err != domain.ErrDuplicateUsername {
			t.Fatalf("expected ErrDuplicateUsername, got %v", err)
		}
	})

	mt.Run("unique index race on email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(
			emptyCursor("db.users"),
			emptyCursor("db.users"),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "_id", Value: "users"}, {Key: "seq", Value: int64(2)}}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: db.users index: email_unique dup key",
			}),
		)

		_, err := repo.Create(context.Background(), &domain.User{Username: "bob", Email: "a@x.com"})
		if err != domain.ErrDuplicateEmail {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})
}

func TestUserRepository_CheckAvailable(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("free", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(emptyCursor("db.users"), emptyCursor("db.users"))

		if err := repo.CheckAvailable(context.Background(), "alice", "a@x.com"); err != nil {
			t.Fatalf("expected available, got %v", err)
		}
	})

	mt.Run("email taken", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(
			emptyCursor("db.users"),
			mtest.CreateCursorResponse(1, "db.users", mtest.FirstBatch, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(1)}}),
		)

		if err := repo.CheckAvailable(context.Background(), "bob", "a@x.com"); err != domain.ErrDuplicateEmail {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(3)},
			{Key: "username", Value: "alice"},
			{Key: "email", Value: "a@x.com"},
			{Key: "password_hash", Value: "h"},
		}))

		u, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("FindByUsername error: %v", err)
		}
		if u.ID != 3 || u.Email != "a@x.com" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(emptyCursor("db.users"))

		if _, err := repo.FindByUsername(context.Background(), "ghost"); err != domain.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestHistoryRepository_FindByIDForUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("owner match", func(mt *mtest.T) {
		repo := NewHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.history", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(5)},
			{Key: "user_id", Value: int64(1)},
			{Key: "job_title", Value: "SRE"},
			{Key: "ats_resume", Value: "ats"},
			{Key: "job_match_score", Value: 55.5},
			{Key: "model", Value: "llama3"},
		}))

		rec, err := repo.FindByIDForUser(context.Background(), 5, 1)
		if err != nil {
			t.Fatalf("FindByIDForUser error: %v", err)
		}
		if rec.JobTitle != "SRE" || rec.ATSResume != "ats" || rec.JobMatchScore != 55.5 {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	mt.Run("not owned", func(mt *mtest.T) {
		repo := NewHistoryRepository(mt.DB)
		mt.AddMockResponses(emptyCursor("db.history"))

		if _, err := repo.FindByIDForUser(context.Background(), 5, 2); err != domain.ErrHistoryNotFound {
			t.Fatalf("expected ErrHistoryNotFound, got %v", err)
		}
	})
}

func TestHistoryRepository_ListSummaries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest first", func(mt *mtest.T) {
		repo := NewHistoryRepository(mt.DB)
		first := mtest.CreateCursorResponse(1, "db.history", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(9)}, {Key: "job_title", Value: "b"}},
			bson.D{{Key: "_id", Value: int64(4)}, {Key: "job_title", Value: "a"}},
		)
		end := mtest.CreateCursorResponse(0, "db.history", mtest.NextBatch)
		mt.AddMockResponses(first, end)

		items, err := repo.ListSummaries(context.Background(), 1, 30)
		if err != nil {
			t.Fatalf("ListSummaries error: %v", err)
		}
		if len(items) != 2 || items[0].ID != 9 || items[1].JobTitle != "a" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}
