package fxnode

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxhost/dsp/param"
)

var errInvalidDescriptor = errors.New("invalid descriptor")

// Descriptor is the static description of one effect type.
type Descriptor struct {
	Type        string
	Name        string
	Description string
	Params      []param.Spec
}

// Spec returns the named parameter spec.
func (d Descriptor) Spec(name string) (param.Spec, bool) {
	for _, s := range d.Params {
		if s.Name == name {
			return s, true
		}
	}

	return param.Spec{}, false
}

// Validate checks the type name and every parameter spec.
func (d Descriptor) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("%w: empty effect type", errInvalidDescriptor)
	}

	for _, s := range d.Params {
		err := s.Validate()
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errInvalidDescriptor, d.Type, err)
		}
	}

	return nil
}
