package handler

import "time"

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type generateRequest struct {
	Resume   string `json:"resume"    validate:"required,notblank"`
	Job      string `json:"job"       validate:"required,notblank"`
	Model    string `json:"model"`
	JobTitle string `json:"job_title" validate:"max=200"`
}

type generateResponse struct {
	ID              int64   `json:"id"`
	ATSResume       string  `json:"ats_resume"`
	CoverLetter     string  `json:"cover_letter"`
	MissingSkills   string  `json:"missing_skills"`
	LinkedInSummary string  `json:"linkedin_summary"`
	JobMatchScore   float64 `json:"job_match_score"`
}

type historySummaryResponse struct {
	ID            int64     `json:"id"`
	JobTitle      string    `json:"job_title"`
	CreatedAt     time.Time `json:"created_at"`
	JobMatchScore float64   `json:"job_match_score"`
	Model         string    `json:"model"`
}

type historyListResponse struct {
	History []historySummaryResponse `json:"history"`
}

type historyItemResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	JobTitle        string    `json:"job_title"`
	CreatedAt       time.Time `json:"created_at"`
	ResumeInput     string    `json:"resume_input"`
	JobDescription  string    `json:"job_description"`
	ATSResume       string    `json:"ats_resume"`
	CoverLetter     string    `json:"cover_letter"`
	MissingSkills   string    `json:"missing_skills"`
	LinkedInSummary string    `json:"linkedin_summary"`
	JobMatchScore   float64   `json:"job_match_score"`
	Model           string    `json:"model"`
}

type historyDetailResponse struct {
	Item historyItemResponse `json:"item"`
}

type jobSearchRequest struct {
	Keyword  string `json:"keyword"  validate:"required,notblank"`
	Location string `json:"location"`
	Page     int    `json:"page"     validate:"omitempty,min=1,max=100"`
}

type jobSearchResponse struct {
	Jobs []jobResponse `json:"jobs"`
}

type jobResponse struct {
	JobID          string `json:"job_id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	ApplyLink      string `json:"apply_link"`
	Publisher      string `json:"publisher"`
	Snippet        string `json:"snippet"`
}

type extractResponse struct {
	Text string `json:"text"`
}

type exportRequest struct {
	Text     string `json:"text"     validate:"required"`
	Format   string `json:"format"   validate:"required,oneof=pdf docx"`
	Filename string `json:"filename" validate:"max=100"`
}
