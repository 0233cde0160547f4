package mindmap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eternisai/text2mindmap/internal/completion"
	"github.com/eternisai/text2mindmap/internal/logger"
)

// CompletionClient is the part of completion.Client the generator needs.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req completion.ChatCompletionRequest) (*completion.ChatCompletionResponse, error)
}

// ClientFactory builds a client bound to one API key.
type ClientFactory func(apiKey string) (CompletionClient, error)

// Observer receives one call per generation.
type Observer interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
}

// NewClientFactory returns a factory producing completion.Clients against baseURL.
func NewClientFactory(baseURL string, log *logger.Logger) ClientFactory {
	return func(apiKey string) (CompletionClient, error) {
		return completion.NewClient(apiKey,
			completion.WithBaseURL(baseURL),
			completion.WithLogger(log.WithComponent("completion")),
		)
	}
}

// Generator turns text into a mindmap outline with one remote call.
type Generator struct {
	newClient ClientFactory
	settings  Settings
	observer  Observer
	logger    *logger.Logger
}

type GeneratorOption func(*Generator)

func WithSettings(s Settings) GeneratorOption {
	return func(g *Generator) { g.settings = s }
}

func WithObserver(o Observer) GeneratorOption {
	return func(g *Generator) { g.observer = o }
}

func NewGenerator(factory ClientFactory, log *logger.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		newClient: factory,
		settings:  DefaultSettings(),
		logger:    log.WithComponent("mindmap"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Settings returns the fixed request parameters.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Request builds the chat completion request for text.
func (g *Generator) Request(text string) completion.ChatCompletionRequest {
	return completion.ChatCompletionRequest{
		Model: g.settings.Model,
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: SystemPrompt},
			{Role: completion.RoleUser, Content: text},
		},
		Temperature: g.settings.Temperature,
		TopP:        g.settings.TopP,
		MaxTokens:   g.settings.MaxTokens,
		Stream:      g.settings.Stream,
	}
}

// Generate makes at most one remote call. A blank credential never reaches the network.
func (g *Generator) Generate(ctx context.Context, credential, text string) Result {
	log := g.logger.WithContext(ctx)
	start := time.Now()

	result := g.generate(ctx, credential, text)

	elapsed := time.Duration(0)
	if f, ok := result.(Failure); !ok || f.Kind == FailureRemote {
		elapsed = time.Since(start)
	}
	if g.observer != nil {
		g.observer.ObserveGeneration(Outcome(result), elapsed)
	}

	switch r := result.(type) {
	case Success:
		stats := Outline(r.Markdown)
		if !stats.Conforms() {
			log.Warn("model output does not match the requested outline shape",
				slog.Int("headings", stats.Headings),
				slog.Int("depth", stats.Depth))
		}
		log.Info("mindmap generated",
			slog.Int("input_chars", len(text)),
			slog.Int("output_chars", len(r.Markdown)),
			slog.Duration("duration", elapsed))
	case Failure:
		log.Warn("mindmap generation failed",
			slog.String("kind", string(r.Kind)),
			slog.String("error", r.Message))
	}

	return result
}

func (g *Generator) generate(ctx context.Context, credential, text string) Result {
	if strings.TrimSpace(credential) == "" {
		return Failure{
			Kind:    FailureMissingCredential,
			Message: "Groq client not initialized. Please provide a valid API key.",
		}
	}

	client, err := g.newClient(credential)
	if err != nil {
		return Failure{
			Kind:    FailureClientSetup,
			Message: fmt.Sprintf("Failed to initialize Groq client: %v", err),
		}
	}

	var resp *completion.ChatCompletionResponse
	err = g.logger.LogOperation(ctx, "chat_completion", func() error {
		var callErr error
		resp, callErr = client.CreateChatCompletion(ctx, g.Request(text))
		return callErr
	})
	if err != nil {
		return Failure{Kind: FailureRemote, Message: fmt.Sprintf("API Error: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return Failure{Kind: FailureRemote, Message: "API Error: response contained no choices"}
	}

	return Success{Markdown: resp.Choices[0].Message.Content}
}

// Connect builds a client for credential without calling the provider, so a
// rejected key is reported when the page is set up.
func (g *Generator) Connect(credential string) error {
	_, err := g.newClient(credential)
	return err
}
