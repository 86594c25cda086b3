// Package classifier implements intent routing: a responder whose
// output is expected to be one persona name from a closed vocabulary.
package classifier

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"

	contractx "github.com/solacechat/solace/agent/contract"
	"github.com/solacechat/solace/agent/agents/responder"
	personax "github.com/solacechat/solace/agent/persona"
)

// Classifier wraps the routing persona. The label it returns is model
// output after normalization and is still not guaranteed to be a
// registered name; the orchestrator owns the final validation and
// default fallback.
type Classifier struct {
	inner      *responder.Responder
	vocabulary []string
}

var _ contractx.Classifier = (*Classifier)(nil)

func New(ctx context.Context, desc personax.Descriptor, chatModel einomodel.BaseChatModel, vocabulary []string) (*Classifier, error) {
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("%w: classifier vocabulary is empty", contractx.ErrValidation)
	}

	inner, err := responder.New(ctx, desc, chatModel)
	if err != nil {
		return nil, err
	}

	vocab := make([]string, len(vocabulary))
	copy(vocab, vocabulary)

	return &Classifier{inner: inner, vocabulary: vocab}, nil
}

// Classify returns the persona name the model picked for the text.
// Model failures propagate typed; an off-vocabulary answer is returned
// as-is for the caller to resolve.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	raw, err := c.inner.Respond(ctx, text)
	if err != nil {
		return "", err
	}
	return c.normalize(raw), nil
}

// normalize reduces raw model output to a candidate label. Models
// occasionally wrap the label in quotes or a sentence; in that case the
// first vocabulary name mentioned wins.
func (c *Classifier) normalize(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.Trim(label, "'\"`.")

	for _, name := range c.vocabulary {
		if label == name {
			return name
		}
	}
	for _, name := range c.vocabulary {
		if strings.Contains(label, name) {
			return name
		}
	}
	return label
}
