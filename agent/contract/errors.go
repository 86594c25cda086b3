package contract

import "errors"

var (
	// ErrValidation marks malformed caller input (empty message, bad sender).
	ErrValidation = errors.New("validation failed")

	// ErrModelInvoke marks any provider or network failure during a model call.
	ErrModelInvoke = errors.New("model invoke failed")

	// ErrContentPolicy marks a provider-side content filter rejection.
	ErrContentPolicy = errors.New("content policy rejection")

	// ErrSchemaViolation marks model output that does not satisfy the
	// expected shape (for example an empty reply).
	ErrSchemaViolation = errors.New("model response violates schema")

	// ErrNoAgentAvailable means classification could not be resolved and
	// no default agent is configured.
	ErrNoAgentAvailable = errors.New("no agent available")
)
