package ports

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// GenerateInput carries one generation request from the transport layer.
type GenerateInput struct {
	Resume   string
	Job      string
	Model    string
	JobTitle string
}

// GenerateResult is returned once all four artifacts are produced and stored.
type GenerateResult struct {
	HistoryID int64
	domain.Artifacts
	JobMatchScore float64
}

// GenerationService runs the four-step prompt sequence for an authenticated user.
type GenerationService interface {
	Generate(ctx context.Context, userID int64, in GenerateInput) (*GenerateResult, error)
}

// TextGenerator is the model inference collaborator: (model, prompt) -> text.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Scorer rates how closely candidate matches reference on a 0-100 scale.
type Scorer interface {
	Score(candidate, reference string) float64
}
