/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main inference engine implementation for Greex. Orchestrates the
pattern generation strategies in a fixed priority order, applies the maximum
pattern length budget, and confirms every candidate against the match oracle
before returning it.
*/

package engine

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
	"github.com/kleascm/greex/pkg/strategies"
)

const (
	// PatternNotFound is the sentinel returned when no strategy produces an
	// accepted candidate. Callers must check for this value rather than
	// assume a usable pattern was produced.
	PatternNotFound = "pattern not found"

	// MaxPatternLength is the length budget for accepted candidates, counted
	// in characters. A policy constant, not a configuration input: it directly
	// affects which of several valid discriminating patterns is chosen.
	MaxPatternLength = 20
)

// Engine implements the pattern inference pipeline.
// Strategies run in a fixed priority order and the first candidate that fits
// the length budget and passes the oracle wins; no further strategies run.
type Engine struct {
	strategies []interfaces.Strategy
	oracle     *oracle.MatchOracle
	logger     *logrus.Logger
	maxLength  int
}

// NewEngine creates a new inference engine with the canonical strategy order.
// The contains strategy runs before the suffix strategy so that a raw
// distinguishing separator beats a longer escaped suffix rendering.
func NewEngine() *Engine {
	o := oracle.NewMatchOracle()
	return &Engine{
		strategies: []interfaces.Strategy{
			strategies.NewCharClassStrategy(o),
			strategies.NewPrefixStrategy(o),
			strategies.NewContainsStrategy(o),
			strategies.NewSuffixStrategy(o),
			strategies.NewStructuralStrategy(o),
		},
		oracle:    o,
		logger:    logrus.New(),
		maxLength: MaxPatternLength,
	}
}

// SetLogger replaces the engine's logger
func (e *Engine) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Strategies returns the strategies in their priority order
func (e *Engine) Strategies() []interfaces.Strategy {
	return e.strategies
}

// Oracle returns the engine's match oracle
func (e *Engine) Oracle() *oracle.MatchOracle {
	return e.oracle
}

// Initialize runs the Init hook of every strategy
func (e *Engine) Initialize() error {
	for _, strategy := range e.strategies {
		if err := strategy.Init(); err != nil {
			return fmt.Errorf("failed to initialize strategy %s: %w", strategy.Name(), err)
		}
	}
	return nil
}

// Infer returns a pattern that fully matches every valid string and rejects
// every invalid one, or the PatternNotFound sentinel. Repeated calls with
// identical ordered inputs produce identical output.
func (e *Engine) Infer(valid []string, invalid []string) string {
	return e.InferWithResult(valid, invalid).Pattern
}

// InferWithResult runs the inference pipeline and returns the full result
// record including the per-strategy trace. The Pattern field carries the
// sentinel when no candidate is accepted.
func (e *Engine) InferWithResult(valid []string, invalid []string) *interfaces.InferenceResult {
	start := time.Now()
	result := &interfaces.InferenceResult{
		ID:        uuid.New().String(),
		Pattern:   PatternNotFound,
		CreatedAt: start,
	}

	examples := interfaces.NewExampleSet(valid, invalid)
	if examples.Empty() {
		// No discrimination is possible against an empty side
		e.logger.WithFields(logrus.Fields{
			"inference_id":  result.ID,
			"valid_count":   len(valid),
			"invalid_count": len(invalid),
		}).Warn("Empty example set, returning sentinel")
		result.Duration = time.Since(start)
		return result
	}

	for _, strategy := range e.strategies {
		attemptStart := time.Now()
		candidate := strategy.TryGenerate(examples)

		accepted := candidate != "" &&
			utf8.RuneCountInString(candidate) <= e.maxLength &&
			e.oracle.Validate(candidate, valid, invalid)

		result.Attempts = append(result.Attempts, interfaces.StrategyAttempt{
			Strategy:  strategy.Name(),
			Candidate: candidate,
			Accepted:  accepted,
			Duration:  time.Since(attemptStart),
		})

		e.logger.WithFields(logrus.Fields{
			"inference_id": result.ID,
			"strategy":     strategy.Name(),
			"candidate":    candidate,
			"accepted":     accepted,
		}).Debug("Candidate evaluated")

		if accepted {
			result.Pattern = candidate
			result.Found = true
			result.Strategy = strategy.Name()
			break
		}
	}

	result.Duration = time.Since(start)
	e.logger.WithFields(logrus.Fields{
		"inference_id": result.ID,
		"pattern":      result.Pattern,
		"found":        result.Found,
		"strategy":     result.Strategy,
		"duration":     result.Duration,
	}).Info("Inference completed")

	return result
}
