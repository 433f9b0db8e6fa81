package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lumenworks/website/backend/internal/domain/install"
)

// ErrSessionClosed is returned when the connection ends while a prompt
// is awaiting the user's choice.
var ErrSessionClosed = errors.New("session closed before install choice")

// deferredPrompt implements install.PromptHandle over the websocket.
// Triggering it pushes a prompt frame to the page; the result arrives as
// an install_result message. Single-use by construction.
type deferredPrompt struct {
	platforms []string
	trigger   func() error
	result    chan install.Choice
	closed    <-chan struct{}

	mu   sync.Mutex
	used bool
}

func (p *deferredPrompt) Platforms() []string {
	return p.platforms
}

// Prompt pushes the trigger frame and waits indefinitely for the user's
// choice; only session close or ctx cancellation unblocks it.
func (p *deferredPrompt) Prompt(ctx context.Context) (install.Choice, error) {
	p.mu.Lock()
	if p.used {
		p.mu.Unlock()
		return install.Choice{}, install.ErrPromptUsed
	}
	p.used = true
	p.mu.Unlock()

	if err := p.trigger(); err != nil {
		return install.Choice{}, fmt.Errorf("failed to request native prompt: %w", err)
	}

	select {
	case choice := <-p.result:
		return choice, nil
	case <-p.closed:
		return install.Choice{}, ErrSessionClosed
	case <-ctx.Done():
		return install.Choice{}, ctx.Err()
	}
}

// resolve delivers the user's choice. Extra results are dropped.
func (p *deferredPrompt) resolve(choice install.Choice) {
	select {
	case p.result <- choice:
	default:
	}
}
