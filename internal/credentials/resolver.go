package credentials

import (
	"context"
	"log/slog"
	"strings"

	"github.com/eternisai/text2mindmap/internal/logger"
)

// Source identifies where a resolved API key came from.
type Source int

const (
	SourceNone Source = iota
	SourceStore
	SourceSession
	SourcePrompt
)

func (s Source) String() string {
	switch s {
	case SourceStore:
		return "store"
	case SourceSession:
		return "session"
	case SourcePrompt:
		return "prompt"
	default:
		return "none"
	}
}

// SecretStore is the preconfigured secret source.
type SecretStore interface {
	Secret(name string) (string, bool)
}

// SessionCredential is the session-scoped key holder.
type SessionCredential interface {
	Credential() string
	SetCredential(key string) bool
}

// Resolution is the outcome of resolving a key.
type Resolution struct {
	Key    string
	Source Source
}

// Ok reports whether a key was found.
func (r Resolution) Ok() bool {
	return r.Source != SourceNone
}

// Resolve applies store > session > prompt precedence. Blank values are skipped.
func Resolve(storeValue, sessionValue, promptValue string) Resolution {
	for _, c := range []Resolution{
		{Key: storeValue, Source: SourceStore},
		{Key: sessionValue, Source: SourceSession},
		{Key: promptValue, Source: SourcePrompt},
	} {
		if key := strings.TrimSpace(c.Key); key != "" {
			return Resolution{Key: key, Source: c.Source}
		}
	}
	return Resolution{Source: SourceNone}
}

// Resolver resolves the API key for one page render.
type Resolver struct {
	store      SecretStore
	secretName string
	logger     *logger.Logger
}

func NewResolver(store SecretStore, secretName string, log *logger.Logger) *Resolver {
	return &Resolver{
		store:      store,
		secretName: secretName,
		logger:     log.WithComponent("credentials"),
	}
}

// Resolve reads the secret store, then the session, then the prompt value.
// A prompt value that wins is remembered in the session. sess may be nil.
func (r *Resolver) Resolve(ctx context.Context, sess SessionCredential, prompt string) Resolution {
	var storeValue string
	if r.store != nil {
		storeValue, _ = r.store.Secret(r.secretName)
	}

	var sessionValue string
	if sess != nil {
		sessionValue = sess.Credential()
	}

	res := Resolve(storeValue, sessionValue, prompt)
	if res.Source == SourcePrompt && sess != nil {
		sess.SetCredential(res.Key)
	}

	r.logger.WithContext(ctx).Debug("credential resolved", slog.String("source", res.Source.String()))
	return res
}
