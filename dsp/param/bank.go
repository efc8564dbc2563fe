package param

import (
	"errors"
	"fmt"
)

// ErrDuplicateParam is returned when two specs share a name or an ID.
var ErrDuplicateParam = errors.New("duplicate parameter")

// Bank is an ordered set of parameters driving a single processor.
type Bank struct {
	params []*Param
	byName map[string]*Param
}

// NewBank builds one Param per spec, in order. Every default is forwarded.
func NewBank(proc Processor, specs ...Spec) (*Bank, error) {
	if proc == nil {
		return nil, fmt.Errorf("param bank: %w", ErrNilProcessor)
	}

	b := &Bank{
		params: make([]*Param, 0, len(specs)),
		byName: make(map[string]*Param, len(specs)),
	}
	ids := make(map[uint32]string, len(specs))

	for _, spec := range specs {
		if _, exists := b.byName[spec.Name]; exists {
			return nil, fmt.Errorf("param bank: %w: name %q", ErrDuplicateParam, spec.Name)
		}

		if other, exists := ids[spec.ID]; exists {
			return nil, fmt.Errorf("param bank: %w: id %d used by %q and %q", ErrDuplicateParam, spec.ID, other, spec.Name)
		}

		p, err := New(proc, spec)
		if err != nil {
			return nil, err
		}

		ids[spec.ID] = spec.Name
		b.byName[spec.Name] = p
		b.params = append(b.params, p)
	}

	return b, nil
}

// Param returns the named parameter, or nil.
func (b *Bank) Param(name string) *Param {
	return b.byName[name]
}

// Set assigns the named parameter. It reports false for unknown names.
func (b *Bank) Set(name string, v float64) bool {
	p := b.byName[name]
	if p == nil {
		return false
	}

	p.Set(v)

	return true
}

// Value returns the named parameter's value.
func (b *Bank) Value(name string) (float64, bool) {
	p := b.byName[name]
	if p == nil {
		return 0, false
	}

	return p.Value(), true
}

// Names lists parameter names in declaration order.
func (b *Bank) Names() []string {
	names := make([]string, len(b.params))
	for i, p := range b.params {
		names[i] = p.spec.Name
	}

	return names
}

// Params returns the parameters in declaration order.
func (b *Bank) Params() []*Param {
	out := make([]*Param, len(b.params))
	copy(out, b.params)

	return out
}

// Values returns a name to value map of the current settings.
func (b *Bank) Values() map[string]float64 {
	out := make(map[string]float64, len(b.params))
	for _, p := range b.params {
		out[p.spec.Name] = p.value
	}

	return out
}

// Reset restores every default.
func (b *Bank) Reset() {
	for _, p := range b.params {
		p.Reset()
	}
}
