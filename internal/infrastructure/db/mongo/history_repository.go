package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

const collectionHistory = "history"

type HistoryRepository struct {
	col *mongo.Collection
	ids *counters
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{col: db.Collection(collectionHistory), ids: newCounters(db)}
}

type mongoHistory struct {
	ID              int64     `bson:"_id"`
	UserID          int64     `bson:"user_id"`
	JobTitle        string    `bson:"job_title"`
	CreatedAt       time.Time `bson:"created_at"`
	ResumeInput     string    `bson:"resume_input"`
	JobDescription  string    `bson:"job_description"`
	ATSResume       string    `bson:"ats_resume"`
	CoverLetter     string    `bson:"cover_letter"`
	MissingSkills   string    `bson:"missing_skills"`
	LinkedInSummary string    `bson:"linkedin_summary"`
	JobMatchScore   float64   `bson:"job_match_score"`
	Model           string    `bson:"model"`
}

func (r *HistoryRepository) Append(ctx context.Context, rec *domain.HistoryRecord) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx, collectionHistory)
	if err != nil {
		return 0, err
	}

	doc := mongoHistory{
		ID:              id,
		UserID:          rec.UserID,
		JobTitle:        rec.JobTitle,
		CreatedAt:       time.Now().UTC(),
		ResumeInput:     rec.ResumeInput,
		JobDescription:  rec.JobDescription,
		ATSResume:       rec.ATSResume,
		CoverLetter:     rec.CoverLetter,
		MissingSkills:   rec.MissingSkills,
		LinkedInSummary: rec.LinkedInSummary,
		JobMatchScore:   rec.JobMatchScore,
		Model:           rec.Model,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}
	return id, nil
}

func (r *HistoryRepository) ListSummaries(ctx context.Context, userID int64, limit int) ([]domain.HistorySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"job_title": 1, "created_at": 1, "job_match_score": 1, "model": 1})

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.HistorySummary{}
	for cur.Next(ctx) {
		var doc mongoHistory
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
		rec := doc.toDomain()
		out = append(out, rec.Summary())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.HistoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoHistory
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("find history: %w", err)
	}
	rec := doc.toDomain()
	return &rec, nil
}

// EnsureIndexes creates the owner index used by listings.
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: -1}},
	})
	return err
}

func (d mongoHistory) toDomain() domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:             d.ID,
		UserID:         d.UserID,
		JobTitle:       d.JobTitle,
		CreatedAt:      d.CreatedAt.UTC(),
		ResumeInput:    d.ResumeInput,
		JobDescription: d.JobDescription,
		Artifacts: domain.Artifacts{
			ATSResume:       d.ATSResume,
			CoverLetter:     d.CoverLetter,
			MissingSkills:   d.MissingSkills,
			LinkedInSummary: d.LinkedInSummary,
		},
		JobMatchScore: d.JobMatchScore,
		Model:         d.Model,
	}
}
