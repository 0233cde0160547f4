// Package mindmaptest provides a recording completion client for tests.
package mindmaptest

import (
	"context"
	"sync"

	"github.com/eternisai/text2mindmap/internal/completion"
	"github.com/eternisai/text2mindmap/internal/mindmap"
)

// FakeClient returns a canned response or error and records every request.
type FakeClient struct {
	Content string
	Err     error
	// NoChoices makes the response empty.
	NoChoices bool

	mu       sync.Mutex
	requests []completion.ChatCompletionRequest
	keys     []string
}

func (f *FakeClient) CreateChatCompletion(ctx context.Context, req completion.ChatCompletionRequest) (*completion.ChatCompletionResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	resp := &completion.ChatCompletionResponse{Model: req.Model}
	if !f.NoChoices {
		resp.Choices = []completion.Choice{{
			Message: completion.Message{Role: completion.RoleAssistant, Content: f.Content},
		}}
	}
	return resp, nil
}

// Factory returns a ClientFactory handing out f and remembering the keys used.
func (f *FakeClient) Factory() mindmap.ClientFactory {
	return func(apiKey string) (mindmap.CompletionClient, error) {
		f.mu.Lock()
		f.keys = append(f.keys, apiKey)
		f.mu.Unlock()
		return f, nil
	}
}

// Requests returns the recorded requests.
func (f *FakeClient) Requests() []completion.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]completion.ChatCompletionRequest(nil), f.requests...)
}

// Keys returns the API keys the factory was called with.
func (f *FakeClient) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}
