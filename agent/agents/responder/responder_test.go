package responder

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/solacechat/solace/agent/contract"
	personax "github.com/solacechat/solace/agent/persona"
)

type fakeChatModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func testDescriptor(name string) personax.Descriptor {
	return personax.Descriptor{
		Name:         name,
		SystemPrompt: "You are a supportive listener.",
		Temperature:  0.7,
	}
}

func TestResponderRespondSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "That sounds really hard. I'm here with you."},
		},
	}

	agent, err := New(context.Background(), testDescriptor(personax.ActiveListening), fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	reply, err := agent.Respond(context.Background(), "I had a rough day")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply != "That sounds really hard. I'm here with you." {
		t.Fatalf("Respond() = %q", reply)
	}
}

func TestResponderRespondTrimsWhitespace(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "  okay  \n"},
		},
	}

	agent, err := New(context.Background(), testDescriptor(personax.GuidedCoping), fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	reply, err := agent.Respond(context.Background(), "any tips?")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply != "okay" {
		t.Fatalf("Respond() = %q, want trimmed reply", reply)
	}
}

func TestResponderRespondEmptyPrompt(t *testing.T) {
	t.Parallel()

	agent, err := New(context.Background(), testDescriptor(personax.ActiveListening), &fakeChatModel{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = agent.Respond(context.Background(), "   ")
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Respond() error = %v, want ErrValidation", err)
	}
}

func TestResponderRespondEmptyReply(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "   "},
		},
	}

	agent, err := New(context.Background(), testDescriptor(personax.ActiveListening), fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = agent.Respond(context.Background(), "hello")
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("Respond() error = %v, want ErrSchemaViolation", err)
	}
}

func TestResponderRespondContentFilter(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		err: errors.New(`provider rejected request: content_filter triggered`),
	}

	agent, err := New(context.Background(), testDescriptor(personax.ActiveListening), fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = agent.Respond(context.Background(), "something disallowed")
	if !errors.Is(err, contractx.ErrContentPolicy) {
		t.Fatalf("Respond() error = %v, want ErrContentPolicy", err)
	}
}

func TestResponderRespondProviderFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		err: errors.New("connection reset"),
	}

	agent, err := New(context.Background(), testDescriptor(personax.ActiveListening), fake)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = agent.Respond(context.Background(), "hello")
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("Respond() error = %v, want ErrModelInvoke", err)
	}
	if errors.Is(err, contractx.ErrContentPolicy) {
		t.Fatalf("Respond() error = %v, must not be ErrContentPolicy", err)
	}
}

func TestNewRejectsInvalidDescriptor(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), personax.Descriptor{Name: "x"}, &fakeChatModel{})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("New() error = %v, want ErrValidation", err)
	}

	_, err = New(context.Background(), testDescriptor("x"), nil)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("New(nil model) error = %v, want ErrValidation", err)
	}
}
