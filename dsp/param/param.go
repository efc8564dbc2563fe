// Package param provides clamped control values for opaque effect processors.
//
// A Param never holds or forwards a value outside its range: Set clamps
// silently and writes the accepted value to the processor under the
// parameter's fixed identifier.
package param

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxhost/dsp/core"
)

// Processor is the write-only parameter surface of an external effect unit.
type Processor interface {
	SetParameter(id uint32, value float32)
}

var (
	// ErrNilProcessor is returned when a parameter is built without a processor.
	ErrNilProcessor = errors.New("nil processor")
	// ErrInvalidRange is returned for specs with non-finite or inverted bounds.
	ErrInvalidRange = errors.New("invalid parameter range")
)

// Spec describes one tunable value of an effect.
type Spec struct {
	ID      uint32
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
}

// Validate checks that the bounds are finite and ordered.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRange)
	}

	if !core.IsFinite(s.Min) || !core.IsFinite(s.Max) || s.Min > s.Max {
		return fmt.Errorf("%w: %s [%v, %v]", ErrInvalidRange, s.Name, s.Min, s.Max)
	}

	return nil
}

// Clamp limits v to the spec range.
func (s Spec) Clamp(v float64) float64 {
	return core.Clamp(v, s.Min, s.Max)
}

// Param is a clamped value bound to one processor parameter.
type Param struct {
	spec  Spec
	proc  Processor
	value float64
}

// New creates a parameter and forwards its clamped default to proc.
func New(proc Processor, spec Spec) (*Param, error) {
	if proc == nil {
		return nil, fmt.Errorf("param %s: %w", spec.Name, ErrNilProcessor)
	}

	err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("param: %w", err)
	}

	p := &Param{spec: spec, proc: proc}
	p.Set(spec.Default)

	return p, nil
}

// Set clamps v into range, stores it and writes it to the processor.
// NaN is ignored.
func (p *Param) Set(v float64) {
	if math.IsNaN(v) {
		return
	}

	p.value = p.spec.Clamp(v)
	p.proc.SetParameter(p.spec.ID, float32(p.value))
}

// Value returns the current clamped value.
func (p *Param) Value() float64 {
	return p.value
}

// Reset restores the default value.
func (p *Param) Reset() {
	p.Set(p.spec.Default)
}

// Spec returns the parameter description.
func (p *Param) Spec() Spec {
	return p.spec
}
