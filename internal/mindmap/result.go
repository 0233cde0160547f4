package mindmap

// Result is either Success or Failure. Consumers switch on the concrete type.
type Result interface {
	isResult()
}

// Success carries the model's markdown exactly as returned.
type Success struct {
	Markdown string
}

// FailureKind classifies why no markdown was produced.
type FailureKind string

const (
	FailureMissingCredential FailureKind = "missing_credential"
	FailureClientSetup       FailureKind = "client_setup"
	FailureRemote            FailureKind = "remote_error"
)

// Failure carries a user-facing message.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}

// Outcome returns a short label for logs and metrics.
func Outcome(r Result) string {
	switch r := r.(type) {
	case Success:
		return "success"
	case Failure:
		return string(r.Kind)
	default:
		return "unknown"
	}
}
