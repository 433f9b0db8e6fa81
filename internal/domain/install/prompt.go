package install

import (
	"context"
	"errors"
)

// Outcome is the user's response to the native install prompt.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDismissed Outcome = "dismissed"
)

// ErrPromptUsed is returned when a handle's trigger is invoked twice.
// The prompt capability is single-use.
var ErrPromptUsed = errors.New("install prompt already used")

// Choice is the resolved result of a native install prompt.
type Choice struct {
	Outcome  Outcome `json:"outcome"`
	Platform string  `json:"platform"`
}

// PromptHandle is the one-shot capability delivered with the
// installability signal. Prompt blocks until the user responds to the
// platform's native install UI; there is no timeout beyond ctx. After one
// resolved (or failed) Prompt call the owning reference must be dropped.
type PromptHandle interface {
	// Platforms lists the platform identifiers the prompt supports.
	Platforms() []string

	// Prompt requests the native install UI and awaits the user's choice.
	Prompt(ctx context.Context) (Choice, error)
}
