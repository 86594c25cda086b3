// Package service is the synchronous request pipeline: store the user
// turn, summarize the thread, enrich the message, orchestrate, store
// the reply. All orchestrator failures are translated to user-safe
// strings at this single boundary.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	contractx "github.com/solacechat/solace/agent/contract"
)

const (
	// DefaultThreadID names the shared session used when the caller
	// does not supply a thread id.
	DefaultThreadID = "mental_health_session"

	// ApologyReply answers content-policy rejections.
	ApologyReply = "I'm sorry, I cannot help with that."

	// FailureReply answers every other internal failure.
	FailureReply = "An error occurred. Please try again."

	contentFilterSignature = "content_filter"
)

// Orchestrator is the routing dependency of the service.
type Orchestrator interface {
	Orchestrate(ctx context.Context, threadID string, enriched string) (contractx.ChatReply, error)
}

type Service struct {
	store        contractx.MessageStore
	summarizer   contractx.Summarizer
	orchestrator Orchestrator

	// Requests on the same thread are serialized so the two appends of
	// one request are never interleaved with another request's.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func New(store contractx.MessageStore, summarizer contractx.Summarizer, orch Orchestrator) (*Service, error) {
	if store == nil {
		return nil, errors.New("message store is required")
	}
	if summarizer == nil {
		return nil, errors.New("summarizer is required")
	}
	if orch == nil {
		return nil, errors.New("orchestrator is required")
	}
	return &Service{
		store:        store,
		summarizer:   summarizer,
		orchestrator: orch,
		locks:        make(map[string]*sync.Mutex),
	}, nil
}

// Handle processes one user message and always returns a reply string
// unless the message itself is invalid. Internal failures come back as
// the fixed user-safe strings, never as errors.
func (s *Service) Handle(ctx context.Context, threadID string, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is empty", contractx.ErrValidation)
	}

	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		threadID = DefaultThreadID
	}

	lock := s.threadLock(threadID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Append(ctx, threadID, contractx.SenderUser, message); err != nil {
		log.Error().Err(err).Str("thread_id", threadID).Msg("store user message")
		return FailureReply, nil
	}

	summary, err := s.summarizer.Summarize(ctx, threadID)
	if err != nil {
		log.Warn().Err(err).Str("thread_id", threadID).Msg("summarize failed, continuing without context")
		summary = ""
	}

	enriched := Enrich(summary, message)

	reply, orchErr := s.orchestrator.Orchestrate(ctx, threadID, enriched)
	replyText := reply.Reply
	if orchErr != nil {
		log.Error().Err(orchErr).Str("thread_id", threadID).Msg("orchestrate failed")
		replyText = TranslateError(orchErr)
	} else {
		log.Debug().Str("thread_id", threadID).Str("agent", reply.Routed).Msg("message routed")
	}

	if err := s.store.Append(ctx, threadID, contractx.SenderSystem, replyText); err != nil {
		log.Error().Err(err).Str("thread_id", threadID).Msg("store reply")
	}

	return replyText, nil
}

// Enrich builds the model input from the thread summary and the latest
// user message.
func Enrich(summary string, message string) string {
	if strings.TrimSpace(summary) == "" {
		return "Current user message: " + message
	}
	return summary + "\nCurrent user message: " + message
}

// TranslateError maps an internal failure to the fixed user-facing
// string. Pure function so the mapping is testable without a provider.
func TranslateError(err error) string {
	if err == nil {
		return FailureReply
	}
	if errors.Is(err, contractx.ErrContentPolicy) {
		return ApologyReply
	}
	// Raw provider errors that bypassed the typed taxonomy still carry
	// the filter signature in their text.
	if strings.Contains(err.Error(), contentFilterSignature) {
		return ApologyReply
	}
	return FailureReply
}

func (s *Service) threadLock(threadID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[threadID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[threadID] = lock
	}
	return lock
}
