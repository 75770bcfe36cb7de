package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ModelClient is the slice of the text-generation service the app uses
type ModelClient interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
	Close() error
}

// ClientFactory opens a ModelClient authenticated with one credential
type ClientFactory func(ctx context.Context, apiKey string) (ModelClient, error)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient opens a Gemini client for apiKey
func NewGeminiClient(ctx context.Context, apiKey string) (ModelClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &geminiClient{client: client}, nil
}

func (g *geminiClient) GenerateText(ctx context.Context, modelName, prompt string) (string, error) {
	model := g.client.GenerativeModel(modelName)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("candidate has no text (finish reason %v)", resp.Candidates[0].FinishReason)
	}
	return sb.String(), nil
}

func (g *geminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	it := g.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, m.Name)
	}
	return names, nil
}

func (g *geminiClient) Close() error {
	return g.client.Close()
}
