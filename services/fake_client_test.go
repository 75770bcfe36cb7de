package services

import (
	"context"
	"errors"
)

// fakeModelClient is a deterministic stand-in for Gemini
type fakeModelClient struct {
	models      []string
	listErr     error
	reply       string
	generateErr error

	generateCalls int
	listCalls     int
	lastModel     string
	lastPrompt    string
	closed        int
}

func (f *fakeModelClient) GenerateText(_ context.Context, model, prompt string) (string, error) {
	f.generateCalls++
	f.lastModel = model
	f.lastPrompt = prompt
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.reply, nil
}

func (f *fakeModelClient) ListModels(context.Context) ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.models, nil
}

func (f *fakeModelClient) Close() error {
	f.closed++
	return nil
}

// factory returns a ClientFactory handing out f and recording the credential
func (f *fakeModelClient) factory(gotKey *string) ClientFactory {
	return func(_ context.Context, apiKey string) (ModelClient, error) {
		if gotKey != nil {
			*gotKey = apiKey
		}
		return f, nil
	}
}

func failingFactory(err error) ClientFactory {
	return func(context.Context, string) (ModelClient, error) {
		return nil, err
	}
}

var errUpstream = errors.New("API key not valid")
