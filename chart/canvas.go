package chart

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTarget  = errors.New("missing drawing target")
	ErrTargetMismatch = errors.New("definition drawn on wrong target")
)

// Canvas - interface of a drawing target for a single chart
type Canvas interface {
	Draw(def Definition) error
}

// CanvasFunc adapts a function to Canvas
type CanvasFunc func(def Definition) error

// Draw calls f(def)
func (f CanvasFunc) Draw(def Definition) error {
	return f(def)
}

// Targets maps chart IDs to their drawing targets
type Targets map[string]Canvas

// Draw draws every definition on the target registered for its ID.
// It stops at the first failure.
func Draw(targets Targets, defs []Definition) error {
	for _, def := range defs {
		canvas, ok := targets[def.ID]
		if !ok || canvas == nil {
			return fmt.Errorf("%w: %s", ErrMissingTarget, def.ID)
		}

		if err := canvas.Draw(def); err != nil {
			return fmt.Errorf("draw %s: %w", def.ID, err)
		}
	}
	return nil
}
