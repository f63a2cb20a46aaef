package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
	"github.com/careerforge/resume-assistant/internal/core/prompt"
	"github.com/careerforge/resume-assistant/internal/pkg/metrics"
)

const (
	DefaultModel             = "llama3"
	defaultGenerationTimeout = 5 * time.Minute
)

type generationService struct {
	backend      ports.TextGenerator
	scorer       ports.Scorer
	history      ports.HistoryRepository
	defaultModel string
	callTimeout  time.Duration
	log          zerolog.Logger
}

// NewGenerationService returns a GenerationService implementation.
// callTimeout bounds each of the four backend calls independently.
func NewGenerationService(
	backend ports.TextGenerator,
	scorer ports.Scorer,
	history ports.HistoryRepository,
	defaultModel string,
	callTimeout time.Duration,
	log zerolog.Logger,
) ports.GenerationService {
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	if callTimeout <= 0 {
		callTimeout = defaultGenerationTimeout
	}
	return &generationService{
		backend:      backend,
		scorer:       scorer,
		history:      history,
		defaultModel: defaultModel,
		callTimeout:  callTimeout,
		log:          log,
	}
}

// Generate runs resume, cover letter, missing skills and LinkedIn summary in
// that order, scores the rewritten resume and stores the result. The first
// backend failure aborts the sequence and nothing is stored.
func (s *generationService) Generate(ctx context.Context, userID int64, in ports.GenerateInput) (*ports.GenerateResult, error) {
	if strings.TrimSpace(in.Resume) == "" || strings.TrimSpace(in.Job) == "" {
		return nil, domain.ErrValidation
	}
	model := strings.TrimSpace(in.Model)
	if model == "" {
		model = s.defaultModel
	}

	// A client disconnect must not abandon a half-finished sequence.
	ctx = context.WithoutCancel(ctx)

	var art domain.Artifacts
	var err error

	if art.ATSResume, err = s.run(ctx, model, prompt.StepResume, prompt.Data{Resume: in.Resume, Job: in.Job}); err != nil {
		return nil, s.fail(model, err)
	}
	rewritten := prompt.Data{Resume: art.ATSResume, Job: in.Job}
	if art.CoverLetter, err = s.run(ctx, model, prompt.StepCoverLetter, rewritten); err != nil {
		return nil, s.fail(model, err)
	}
	if art.MissingSkills, err = s.run(ctx, model, prompt.StepMissingSkills, rewritten); err != nil {
		return nil, s.fail(model, err)
	}
	if art.LinkedInSummary, err = s.run(ctx, model, prompt.StepLinkedInSummary, prompt.Data{Resume: art.ATSResume}); err != nil {
		return nil, s.fail(model, err)
	}

	score := s.scorer.Score(art.ATSResume, in.Job)

	rec := &domain.HistoryRecord{
		UserID:         userID,
		JobTitle:       strings.TrimSpace(in.JobTitle),
		ResumeInput:    in.Resume,
		JobDescription: in.Job,
		Artifacts:      art,
		JobMatchScore:  score,
		Model:          model,
	}
	id, err := s.history.Append(ctx, rec)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(s.modelLabel(model), "store_error").Inc()
		return nil, fmt.Errorf("generate: store history: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues(s.modelLabel(model), "success").Inc()
	metrics.JobMatchScore.Observe(score)
	s.log.Info().
		Int64("user_id", userID).
		Int64("history_id", id).
		Str("model", model).
		Float64("score", score).
		Msg("generation stored")

	return &ports.GenerateResult{HistoryID: id, Artifacts: art, JobMatchScore: score}, nil
}

func (s *generationService) run(ctx context.Context, model string, step prompt.Step, data prompt.Data) (string, error) {
	text, err := prompt.Render(step, data)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", step, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	out, err := s.backend.Generate(callCtx, model, text)
	metrics.BackendCallDuration.WithLabelValues(string(step)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", &domain.GenerationError{Step: string(step), Detail: backendDetail(err), Err: err}
	}
	return strings.TrimSpace(out), nil
}

func (s *generationService) fail(model string, err error) error {
	metrics.GenerationsTotal.WithLabelValues(s.modelLabel(model), "backend_error").Inc()
	s.log.Warn().Err(err).Str("model", model).Msg("generation aborted")
	return err
}

// modelLabel keeps the metric's label set fixed; the model name itself comes
// from the request and goes to the logs only.
func (s *generationService) modelLabel(model string) string {
	if model == s.defaultModel {
		return "default"
	}
	return "custom"
}

func backendDetail(err error) string {
	var be *domain.BackendError
	if errors.As(err, &be) {
		return be.Detail
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "backend timed out"
	}
	return err.Error()
}
