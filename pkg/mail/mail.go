package mail

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by senders that lack credentials.
var ErrNotConfigured = errors.New("mail sender is not configured")

// Message is a templated transactional e-mail. Params are substituted into
// the template by the provider.
type Message struct {
	Params map[string]string
}

// Sender hides the concrete e-mail provider from the domain.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Disabled refuses every message with ErrNotConfigured.
var Disabled Sender = disabled{}

type disabled struct{}

func (disabled) Send(context.Context, Message) error { return ErrNotConfigured }
