package contract

import "time"

// Sender identifies who produced a message in a conversation thread.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
	SenderAgent  Sender = "agent"
)

// Valid reports whether s is one of the known sender roles.
func (s Sender) Valid() bool {
	switch s {
	case SenderUser, SenderSystem, SenderAgent:
		return true
	default:
		return false
	}
}

// Message is a single immutable entry in a conversation thread.
// Ordering is defined by position in the thread, not by timestamp.
type Message struct {
	ThreadID  string    `json:"thread_id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the normalized inbound request handed to the service
// layer after HTTP decoding.
type ChatRequest struct {
	ThreadID string `json:"thread_id,omitempty"`
	Message  string `json:"message"`
}

// ChatReply is what the service layer hands back for a request. Routed
// carries the persona name that produced the reply, for logging.
type ChatReply struct {
	Reply  string `json:"reply"`
	Routed string `json:"routed,omitempty"`
}
