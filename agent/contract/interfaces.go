package contract

import "context"

// Responder is the single capability every persona exposes: turn an
// enriched text prompt into a text reply.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// Classifier maps an enriched message to the name of the persona that
// should answer it. The returned label is raw model output and must be
// validated against the registry by the caller.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// MessageStore is the append-only per-thread conversation log.
// History of an unknown thread is an empty slice, never an error.
type MessageStore interface {
	Append(ctx context.Context, threadID string, sender Sender, content string) error
	History(ctx context.Context, threadID string) ([]Message, error)
}

// Summarizer condenses a thread's history into context for the next
// model call. Best effort: callers degrade to an empty summary on error.
type Summarizer interface {
	Summarize(ctx context.Context, threadID string) (string, error)
}

// Locator resolves a coarse "City, Region, Country" string for the
// current host. An unknown location is ("", nil).
type Locator interface {
	Lookup(ctx context.Context) (string, error)
}
