// Package tracker implements the foreground activity capture loop.
package tracker

import (
	"errors"
	"time"
)

// WindowSample identifies the foreground window at a point in time.
type WindowSample struct {
	App   string
	Title string
}

// InputDelta holds input activity accumulated since the previous drain.
type InputDelta struct {
	KeyPresses    int
	MouseClicks   int
	MouseDistance float64
}

// IsZero reports whether the delta carries no input activity.
func (d InputDelta) IsZero() bool {
	return d.KeyPresses == 0 && d.MouseClicks == 0 && d.MouseDistance == 0
}

// Add folds another delta into this one.
func (d *InputDelta) Add(other InputDelta) {
	d.KeyPresses += other.KeyPresses
	d.MouseClicks += other.MouseClicks
	d.MouseDistance += other.MouseDistance
}

// Sampler reads the desktop state. Implementations are platform specific.
type Sampler interface {
	// ActiveWindow returns the current foreground window.
	ActiveWindow() (WindowSample, error)

	// DrainInput returns input activity since the last call and resets
	// the underlying counters.
	DrainInput() (InputDelta, error)

	// IdleFor returns how long the user has been without input.
	IdleFor() (time.Duration, error)
}

// ErrNoPlatformSampler is returned when no sampler exists for this build.
var ErrNoPlatformSampler = errors.New("no platform sampler available for this build")

// NewPlatformSampler returns the sampler for the current platform.
func NewPlatformSampler() (Sampler, error) {
	return nil, ErrNoPlatformSampler
}
