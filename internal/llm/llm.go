package llm

import (
	"context"
	"errors"
)

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}

// ErrDisabled is returned when no language model backend is configured.
var ErrDisabled = errors.New("llm: no backend configured")

type disabledClient struct{}

// NewDisabledClient returns a TextGenerator that always fails with
// ErrDisabled. It lets the rest of the application run without an API key.
func NewDisabledClient() TextGenerator {
	return disabledClient{}
}

func (disabledClient) GenerateContent(_ context.Context, _ string) (string, error) {
	return "", ErrDisabled
}
