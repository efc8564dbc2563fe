package bypass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxhost/dsp/core"
	"github.com/cwbudde/algo-fxhost/dsp/param"
)

const (
	// MinMix is a fully dry output.
	MinMix = 0.0
	// MaxMix is a fully wet output.
	MaxMix = 100.0
	// DefaultMix is the mix a new Mixer starts with.
	DefaultMix = MaxMix
)

// ErrNilCollaborator is returned when a processor or gain element is missing.
var ErrNilCollaborator = errors.New("nil collaborator")

// GainElement is a linear gain stage in one of the two signal paths.
type GainElement interface {
	SetGain(gain float32)
}

// Option configures a Mixer at construction.
type Option func(*config)

type config struct {
	initialMix float64
}

// WithInitialMix sets the starting mix percentage. Values are clamped to
// [0, 100]; NaN keeps the default.
func WithInitialMix(mix float64) Option {
	return func(c *config) {
		if !math.IsNaN(mix) {
			c.initialMix = core.Clamp(mix, MinMix, MaxMix)
		}
	}
}

// Mixer is the dry/wet crossfade and bypass state machine.
type Mixer struct {
	proc param.Processor
	dry  GainElement
	wet  GainElement

	mix          float64
	lastKnownMix float64
	started      bool
}

// New wires a Mixer to its processor and gain elements. The initial gains
// are written immediately and the Mixer starts in the started state.
func New(proc param.Processor, dry, wet GainElement, opts ...Option) (*Mixer, error) {
	switch {
	case proc == nil:
		return nil, fmt.Errorf("bypass: effect processor: %w", ErrNilCollaborator)
	case dry == nil:
		return nil, fmt.Errorf("bypass: dry gain element: %w", ErrNilCollaborator)
	case wet == nil:
		return nil, fmt.Errorf("bypass: wet gain element: %w", ErrNilCollaborator)
	}

	cfg := config{initialMix: DefaultMix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mixer{
		proc:         proc,
		dry:          dry,
		wet:          wet,
		lastKnownMix: cfg.initialMix,
		started:      true,
	}
	m.SetMix(cfg.initialMix)

	return m, nil
}

// SetMix clamps mix to [0, 100] and writes the matching dry and wet gains.
// It does not change the started/stopped state. NaN is ignored.
func (m *Mixer) SetMix(mix float64) {
	if math.IsNaN(mix) {
		return
	}

	m.mix = core.Clamp(mix, MinMix, MaxMix)
	m.dry.SetGain(float32(m.DryGain()))
	m.wet.SetGain(float32(m.WetGain()))
}

// Mix returns the current wet percentage.
func (m *Mixer) Mix() float64 {
	return m.mix
}

// DryGain returns 1 - mix/100.
func (m *Mixer) DryGain() float64 {
	return 1 - m.WetGain()
}

// WetGain returns mix/100.
func (m *Mixer) WetGain() float64 {
	return core.PercentToFraction(m.mix)
}

// Start restores the mix saved by the last Stop. It is a no-op when the
// Mixer is already started.
func (m *Mixer) Start() {
	if m.started {
		return
	}

	m.SetMix(m.lastKnownMix)
	m.started = true
}

// Stop saves the current mix and bypasses the effect by setting the mix
// to 0. It is a no-op when the Mixer is already stopped.
func (m *Mixer) Stop() {
	if !m.started {
		return
	}

	m.lastKnownMix = m.mix
	m.SetMix(MinMix)
	m.started = false
}

// IsStarted reports whether the wet path is enabled.
func (m *Mixer) IsStarted() bool {
	return m.started
}

// IsStopped reports whether the effect is bypassed.
func (m *Mixer) IsStopped() bool {
	return !m.started
}

// LastKnownMix returns the mix saved by the most recent Stop, or the
// initial mix if Stop was never called. Start restores this value.
func (m *Mixer) LastKnownMix() float64 {
	return m.lastKnownMix
}

// Processor returns the effect processor the wet path runs through.
func (m *Mixer) Processor() param.Processor {
	return m.proc
}
