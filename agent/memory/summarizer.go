package memory

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	contractx "github.com/solacechat/solace/agent/contract"
)

const defaultMaxSummaryTurns = 20

// TranscriptSummarizer condenses a thread by reformatting its recent
// turns into a compact transcript block. Deterministic, no model call.
type TranscriptSummarizer struct {
	store    contractx.MessageStore
	maxTurns int
}

func NewTranscriptSummarizer(store contractx.MessageStore, maxTurns int) *TranscriptSummarizer {
	if maxTurns <= 0 {
		maxTurns = defaultMaxSummaryTurns
	}
	return &TranscriptSummarizer{store: store, maxTurns: maxTurns}
}

func (s *TranscriptSummarizer) Summarize(ctx context.Context, threadID string) (string, error) {
	msgs, err := s.store.History(ctx, threadID)
	if err != nil {
		return "", err
	}
	return formatTranscript(msgs, s.maxTurns), nil
}

func formatTranscript(msgs []contractx.Message, maxTurns int) string {
	if len(msgs) == 0 {
		return ""
	}
	if maxTurns > 0 && len(msgs) > maxTurns {
		msgs = msgs[len(msgs)-maxTurns:]
	}

	var b strings.Builder
	b.WriteString("Conversation so far:")
	for _, m := range msgs {
		b.WriteString("\n")
		b.WriteString(string(m.Sender))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

const summarizerSystemPrompt = "You condense mental-health support conversations. " +
	"Summarize the transcript below in at most four sentences, keeping the " +
	"user's emotional state, concerns already discussed, and any advice given. " +
	"Do not add new advice."

// ModelSummarizer asks the provider model to condense the transcript.
// Any provider failure degrades to the plain transcript so a flaky
// summary model never fails the request.
type ModelSummarizer struct {
	store    contractx.MessageStore
	client   *openaisdk.Client
	model    string
	maxTurns int
}

func NewModelSummarizer(store contractx.MessageStore, client *openaisdk.Client, model string) (*ModelSummarizer, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: summarizer client is nil", contractx.ErrValidation)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: summarizer model is empty", contractx.ErrValidation)
	}
	return &ModelSummarizer{
		store:    store,
		client:   client,
		model:    strings.TrimSpace(model),
		maxTurns: defaultMaxSummaryTurns,
	}, nil
}

func (s *ModelSummarizer) Summarize(ctx context.Context, threadID string) (string, error) {
	msgs, err := s.store.History(ctx, threadID)
	if err != nil {
		return "", err
	}

	transcript := formatTranscript(msgs, s.maxTurns)
	if transcript == "" {
		return "", nil
	}

	resp, err := s.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(s.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(summarizerSystemPrompt),
			openaisdk.UserMessage(transcript),
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("thread_id", threadID).Msg("summary model failed, using transcript")
		return transcript, nil
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return transcript, nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
