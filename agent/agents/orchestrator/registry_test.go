package orchestrator

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/solacechat/solace/agent/contract"
)

type fakeResponder struct {
	reply string
	err   error
}

func (f *fakeResponder) Respond(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	agent := &fakeResponder{reply: "hi"}
	if err := reg.Register("listener", agent); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := reg.Resolve("listener")
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != agent {
		t.Fatal("Resolve() returned a different responder")
	}

	if _, ok := reg.Resolve("missing"); ok {
		t.Fatal("Resolve(missing) ok = true, want false")
	}
}

func TestRegistryRejectsBadRegistration(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if err := reg.Register("  ", &fakeResponder{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Register(empty name) error = %v, want ErrValidation", err)
	}
	if err := reg.Register("a", nil); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Register(nil agent) error = %v, want ErrValidation", err)
	}

	if err := reg.Register("a", &fakeResponder{}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register("a", &fakeResponder{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Register(duplicate) error = %v, want ErrValidation", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := reg.Register(name, &fakeResponder{}); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}

	names := reg.Names()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
}
