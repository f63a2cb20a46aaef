package handler

import (
	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
)

// --- Request → Service input ---

func toGenerateInput(req generateRequest) ports.GenerateInput {
	return ports.GenerateInput{
		Resume:   req.Resume,
		Job:      req.Job,
		Model:    req.Model,
		JobTitle: req.JobTitle,
	}
}

func toJobQuery(req jobSearchRequest) domain.JobQuery {
	return domain.JobQuery{Keyword: req.Keyword, Location: req.Location, Page: req.Page}
}

// --- Domain → Response ---

func toGenerateResponse(res *ports.GenerateResult) generateResponse {
	return generateResponse{
		ID:              res.HistoryID,
		ATSResume:       res.ATSResume,
		CoverLetter:     res.CoverLetter,
		MissingSkills:   res.MissingSkills,
		LinkedInSummary: res.LinkedInSummary,
		JobMatchScore:   res.JobMatchScore,
	}
}

func toHistoryListResponse(items []domain.HistorySummary) historyListResponse {
	out := make([]historySummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, historySummaryResponse{
			ID:            s.ID,
			JobTitle:      s.JobTitle,
			CreatedAt:     s.CreatedAt,
			JobMatchScore: s.JobMatchScore,
			Model:         s.Model,
		})
	}
	return historyListResponse{History: out}
}

func toHistoryItemResponse(r *domain.HistoryRecord) historyItemResponse {
	return historyItemResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		JobTitle:        r.JobTitle,
		CreatedAt:       r.CreatedAt,
		ResumeInput:     r.ResumeInput,
		JobDescription:  r.JobDescription,
		ATSResume:       r.ATSResume,
		CoverLetter:     r.CoverLetter,
		MissingSkills:   r.MissingSkills,
		LinkedInSummary: r.LinkedInSummary,
		JobMatchScore:   r.JobMatchScore,
		Model:           r.Model,
	}
}

func toJobSearchResponse(jobs []domain.JobListing) jobSearchResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobResponse{
			JobID:          j.JobID,
			Title:          j.Title,
			Company:        j.Company,
			Location:       j.Location,
			EmploymentType: j.EmploymentType,
			ApplyLink:      j.ApplyLink,
			Publisher:      j.Publisher,
			Snippet:        j.Snippet,
		})
	}
	return jobSearchResponse{Jobs: out}
}
