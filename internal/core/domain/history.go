package domain

import "time"

// Artifacts are the four texts produced by one generation request.
type Artifacts struct {
	ATSResume       string `json:"ats_resume"`
	CoverLetter     string `json:"cover_letter"`
	MissingSkills   string `json:"missing_skills"`
	LinkedInSummary string `json:"linkedin_summary"`
}

// HistoryRecord is the immutable result of a successful generation request.
// It belongs to exactly one user and is only ever returned to that user.
type HistoryRecord struct {
	ID             int64
	UserID         int64
	JobTitle       string
	CreatedAt      time.Time
	ResumeInput    string
	JobDescription string
	Artifacts
	JobMatchScore float64
	Model         string
}

// HistorySummary is the list view of a HistoryRecord.
type HistorySummary struct {
	ID            int64
	JobTitle      string
	CreatedAt     time.Time
	JobMatchScore float64
	Model         string
}

// Summary projects the record onto its list view.
func (r *HistoryRecord) Summary() HistorySummary {
	return HistorySummary{
		ID:            r.ID,
		JobTitle:      r.JobTitle,
		CreatedAt:     r.CreatedAt,
		JobMatchScore: r.JobMatchScore,
		Model:         r.Model,
	}
}
