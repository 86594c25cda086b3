package memory

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/solacechat/solace/agent/contract"
)

func TestTranscriptSummarizerEmptyThread(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	sum := NewTranscriptSummarizer(store, 0)

	out, err := sum.Summarize(context.Background(), "empty")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if out != "" {
		t.Fatalf("Summarize() = %q, want empty", out)
	}
}

func TestTranscriptSummarizerFormatsTurns(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	ctx := context.Background()
	if err := store.Append(ctx, "t1", contractx.SenderUser, "I feel stressed"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Append(ctx, "t1", contractx.SenderSystem, "Tell me more"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	sum := NewTranscriptSummarizer(store, 0)
	out, err := sum.Summarize(ctx, "t1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !strings.HasPrefix(out, "Conversation so far:") {
		t.Fatalf("Summarize() = %q, missing header", out)
	}
	if !strings.Contains(out, "user: I feel stressed") {
		t.Fatalf("Summarize() = %q, missing user turn", out)
	}
	if !strings.Contains(out, "system: Tell me more") {
		t.Fatalf("Summarize() = %q, missing system turn", out)
	}
	if strings.Index(out, "user:") > strings.Index(out, "system:") {
		t.Fatalf("Summarize() = %q, turns out of order", out)
	}
}

func TestTranscriptSummarizerCapsTurns(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	ctx := context.Background()
	for _, content := range []string{"first", "second", "third"} {
		if err := store.Append(ctx, "t1", contractx.SenderUser, content); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	sum := NewTranscriptSummarizer(store, 2)
	out, err := sum.Summarize(ctx, "t1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if strings.Contains(out, "first") {
		t.Fatalf("Summarize() = %q, oldest turn should be dropped", out)
	}
	if !strings.Contains(out, "second") || !strings.Contains(out, "third") {
		t.Fatalf("Summarize() = %q, recent turns missing", out)
	}
}
