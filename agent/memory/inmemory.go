// Package memory provides the conversation log backends and the
// summarizers that condense a thread's history into model context.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	contractx "github.com/solacechat/solace/agent/contract"
)

// InMemoryStore is a volatile MessageStore keeping threads in a process
// local map. Safe for concurrent access; returned histories are copies
// so callers cannot mutate internal state. Threads are created lazily on
// first append and live for the process lifetime.
type InMemoryStore struct {
	mu      sync.RWMutex
	threads map[string][]contractx.Message

	now func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		threads: make(map[string][]contractx.Message),
		now:     time.Now,
	}
}

func (s *InMemoryStore) Append(_ context.Context, threadID string, sender contractx.Sender, content string) error {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return fmt.Errorf("%w: thread id is empty", contractx.ErrValidation)
	}
	if !sender.Valid() {
		return fmt.Errorf("%w: unknown sender %q", contractx.ErrValidation, sender)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[threadID] = append(s.threads[threadID], contractx.Message{
		ThreadID:  threadID,
		Sender:    sender,
		Content:   content,
		CreatedAt: s.now().UTC(),
	})
	return nil
}

func (s *InMemoryStore) History(_ context.Context, threadID string) ([]contractx.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.threads[strings.TrimSpace(threadID)]
	out := make([]contractx.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
