package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/dbx"
)

type HistoryRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewHistoryRepository(db dbx.DBTX) *HistoryRepository {
	return &HistoryRepository{db: db, now: time.Now}
}

func (r *HistoryRepository) Append(ctx context.Context, rec *domain.HistoryRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO history (user_id, job_title, created_at, resume_input, job_description,
			ats_resume, cover_letter, missing_skills, linkedin_summary, job_match_score, model)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.JobTitle, formatTime(r.now()), rec.ResumeInput, rec.JobDescription,
		rec.ATSResume, rec.CoverLetter, rec.MissingSkills, rec.LinkedInSummary, rec.JobMatchScore, rec.Model)
	if err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}
	return id, nil
}

func (r *HistoryRepository) ListSummaries(ctx context.Context, userID int64, limit int) ([]domain.HistorySummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, job_title, created_at, job_match_score, model
		FROM history WHERE user_id = ? ORDER BY id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	out := []domain.HistorySummary{}
	for rows.Next() {
		var (
			s         domain.HistorySummary
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.JobTitle, &createdAt, &s.JobMatchScore, &s.Model); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.HistoryRecord, error) {
	var (
		rec       domain.HistoryRecord
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, job_title, created_at, resume_input, job_description,
			ats_resume, cover_letter, missing_skills, linkedin_summary, job_match_score, model
		FROM history WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&rec.ID, &rec.UserID, &rec.JobTitle, &createdAt, &rec.ResumeInput, &rec.JobDescription,
			&rec.ATSResume, &rec.CoverLetter, &rec.MissingSkills, &rec.LinkedInSummary, &rec.JobMatchScore, &rec.Model)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}
