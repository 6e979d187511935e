/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Greex engine. Defines the core types and
interfaces used across all packages to break import cycles and enable proper
modular design.
*/

package interfaces

import (
	"time"
)

// ExampleSet represents a single labeled inference input: strings the
// generated pattern must fully match and strings it must reject. Both slices
// are treated as immutable for the duration of an inference call.
type ExampleSet struct {
	Valid   []string
	Invalid []string
}

// NewExampleSet creates an example set from valid and invalid strings
func NewExampleSet(valid, invalid []string) *ExampleSet {
	return &ExampleSet{
		Valid:   valid,
		Invalid: invalid,
	}
}

// Empty reports whether either side of the set is empty. An empty side makes
// discrimination impossible, so the engine short-circuits to the sentinel.
func (s *ExampleSet) Empty() bool {
	return len(s.Valid) == 0 || len(s.Invalid) == 0
}

// Strategy defines the interface for pattern generation strategies.
// Each strategy proposes at most one candidate pattern from the example set;
// an empty string means the strategy has nothing to offer for this input.
type Strategy interface {
	// TryGenerate proposes an anchored full-match candidate pattern, or ""
	TryGenerate(examples *ExampleSet) string

	// Name returns the name of this strategy
	Name() string

	// Description returns a description of this strategy
	Description() string

	// Init performs any stateful setup for the strategy
	Init() error
}

// StrategyAttempt records the outcome of a single strategy during inference
type StrategyAttempt struct {
	Strategy  string        `json:"strategy"`
	Candidate string        `json:"candidate,omitempty"`
	Accepted  bool          `json:"accepted"`
	Duration  time.Duration `json:"duration"`
}

// InferenceResult represents the outcome of a single inference call.
// Observability only: the returned pattern string is authoritative and the
// result record never feeds back into pattern selection.
type InferenceResult struct {
	ID        string            `json:"id"`
	Pattern   string            `json:"pattern"`
	Found     bool              `json:"found"`
	Strategy  string            `json:"strategy,omitempty"`
	Attempts  []StrategyAttempt `json:"attempts"`
	Duration  time.Duration     `json:"duration"`
	CreatedAt time.Time         `json:"created_at"`
}
