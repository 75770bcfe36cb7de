package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrRateLimited is wrapped in the ServiceError returned when the outbound
// limiter rejects a call. No request reaches the service in that case.
var ErrRateLimited = errors.New("request limit reached, try again shortly")

// ModelSelector picks the model a completion is sent to. It is the only
// place that knows about upstream model naming.
type ModelSelector interface {
	SelectModel(ctx context.Context, client ModelClient) (string, error)
}

// FixedModel always uses the same model name
type FixedModel string

func (m FixedModel) SelectModel(context.Context, ModelClient) (string, error) {
	return string(m), nil
}

// DiscoveredModel lists the available models and takes the first Gemini
// model whose name contains Preferred, else Fallback.
type DiscoveredModel struct {
	Preferred string
	Fallback  string
}

func (d DiscoveredModel) SelectModel(ctx context.Context, client ModelClient) (string, error) {
	names, err := client.ListModels(ctx)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if strings.Contains(name, "gemini") && strings.Contains(name, d.Preferred) {
			return name, nil
		}
	}
	return d.Fallback, nil
}

// Completer sends prompts to the text-generation service
type Completer struct {
	newClient ClientFactory
	selector  ModelSelector
	limiter   *rate.Limiter
}

// NewCompleter builds a Completer. requestsPerMinute <= 0 disables limiting.
func NewCompleter(newClient ClientFactory, selector ModelSelector, requestsPerMinute int) *Completer {
	c := &Completer{newClient: newClient, selector: selector}
	if requestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
	}
	return c
}

// Complete makes one generate call with the given credential. Every failure
// comes back as a *ServiceError; nothing is retried.
func (c *Completer) Complete(ctx context.Context, credential, prompt string) (string, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return "", &ServiceError{Op: "generate content", Err: ErrRateLimited}
	}

	client, err := c.newClient(ctx, credential)
	if err != nil {
		return "", &ServiceError{Op: "create client", Err: err}
	}
	defer client.Close()

	model, err := c.selector.SelectModel(ctx, client)
	if err != nil {
		return "", &ServiceError{Op: "select model", Err: err}
	}

	start := time.Now()
	text, err := client.GenerateText(ctx, model, prompt)
	if err != nil {
		log.Printf("Gemini error (model %s): %v", model, err)
		return "", &ServiceError{Op: "generate content", Err: err}
	}
	log.Printf("Completion from %s in %s (%d chars)", model, time.Since(start).Round(time.Millisecond), len(text))
	return text, nil
}

// AvailableModels lists every model the credential can see. It is only used
// to help diagnose a failed completion.
func (c *Completer) AvailableModels(ctx context.Context, credential string) ([]string, error) {
	client, err := c.newClient(ctx, credential)
	if err != nil {
		return nil, &ServiceError{Op: "create client", Err: err}
	}
	defer client.Close()

	names, err := client.ListModels(ctx)
	if err != nil {
		return nil, &ServiceError{Op: "list models", Err: err}
	}
	return names, nil
}
