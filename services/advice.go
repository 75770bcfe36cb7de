package services

import (
	"context"
	"errors"
	"log"

	"advicerater/config"
	"advicerater/models"
)

// AdviceService runs the rate-this-advice flow for a session
type AdviceService struct {
	completer *Completer
}

func NewAdviceService(completer *Completer) *AdviceService {
	return &AdviceService{completer: completer}
}

// NewAdviceServiceFromConfig wires the Gemini-backed completer described by cfg
func NewAdviceServiceFromConfig(cfg *config.Config, newClient ClientFactory) *AdviceService {
	var selector ModelSelector
	if cfg.Gemini.Model != "" {
		selector = FixedModel(cfg.Gemini.Model)
	} else {
		selector = DiscoveredModel{Preferred: cfg.Gemini.PreferredModel, Fallback: cfg.Gemini.FallbackModel}
	}
	return NewAdviceService(NewCompleter(newClient, selector, cfg.Gemini.RequestsPerMinute))
}

// Validate checks the preconditions of a rating request without touching
// the network.
func Validate(sess *Session, req models.RatingRequest) error {
	if sess == nil || !sess.IsConfigured() {
		return &ValidationError{Field: "credential", Message: "Please configure your Gemini API Key first"}
	}
	if req.Advice == "" || req.Circumstances == "" {
		field := "advice"
		if req.Advice != "" {
			field = "circumstances"
		}
		return &ValidationError{Field: field, Message: "Please enter both advice and circumstances."}
	}
	return nil
}

// Rate validates the request, asks the model for a rating and renders the
// reply. A *ValidationError means no call was made; a *ServiceError means
// the call failed and no extraction was attempted.
func (s *AdviceService) Rate(ctx context.Context, sess *Session, req models.RatingRequest) (models.RatingView, error) {
	if err := Validate(sess, req); err != nil {
		return models.RatingView{}, err
	}

	text, err := s.completer.Complete(ctx, sess.Credential(), BuildPrompt(req.Advice, req.Circumstances))
	if err != nil {
		return models.RatingView{}, err
	}
	return Render(text), nil
}

// Diagnose lists the models visible to the session's credential
func (s *AdviceService) Diagnose(ctx context.Context, sess *Session) ([]string, error) {
	return s.completer.AvailableModels(ctx, sess.Credential())
}

// Outcome runs Rate and folds every result into what the page shows:
// validation messages inline, service failures with the model listing.
func (s *AdviceService) Outcome(ctx context.Context, sess *Session, req models.RatingRequest) models.RatingOutcome {
	view, err := s.Rate(ctx, sess, req)
	if err == nil {
		return models.RatingOutcome{Result: &view}
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return models.RatingOutcome{Error: verr.Message, Field: verr.Field}
	}

	log.Printf("Rating failed for session %s: %v", sess.ID, err)
	outcome := models.RatingOutcome{Error: "Error: " + err.Error()}
	// Throttled locally: listing models would be another upstream call.
	if errors.Is(err, ErrRateLimited) {
		outcome.Throttled = true
		return outcome
	}
	names, listErr := s.Diagnose(ctx, sess)
	if listErr != nil {
		outcome.ModelsError = "Couldn't list models: " + listErr.Error()
	} else {
		outcome.AvailableModels = names
	}
	return outcome
}
