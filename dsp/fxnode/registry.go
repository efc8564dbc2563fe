package fxnode

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownEffect is returned for effect types missing from a registry.
	ErrUnknownEffect = errors.New("unknown effect type")

	errDuplicateEffect = errors.New("duplicate effect type")
)

// Registry maps effect type names to descriptors.
type Registry struct {
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor under its type name.
func (r *Registry) Register(desc Descriptor) error {
	err := desc.Validate()
	if err != nil {
		return err
	}

	if _, exists := r.descriptors[desc.Type]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, desc.Type)
	}

	r.descriptors[desc.Type] = desc

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(desc Descriptor) {
	err := r.Register(desc)
	if err != nil {
		panic("fxnode registry: " + err.Error())
	}
}

// Lookup returns the descriptor for the given effect type.
func (r *Registry) Lookup(effectType string) (Descriptor, bool) {
	desc, ok := r.descriptors[effectType]
	return desc, ok
}

// Types lists registered effect types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.descriptors))
	for t := range r.descriptors {
		types = append(types, t)
	}

	sort.Strings(types)

	return types
}

// NewNode builds a node of the given effect type.
func (r *Registry) NewNode(effectType string, collab Collaborators, opts ...Option) (*Node, error) {
	desc, ok := r.descriptors[effectType]
	if !ok {
		return nil, fmt.Errorf("fxnode: %w: %s", ErrUnknownEffect, effectType)
	}

	return New(desc, collab, opts...)
}

// NewNodeFromPreset builds a node for the preset's effect type and applies it.
func (r *Registry) NewNodeFromPreset(p Preset, collab Collaborators) (*Node, error) {
	n, err := r.NewNode(p.Type, collab)
	if err != nil {
		return nil, err
	}

	err = n.Apply(p)
	if err != nil {
		return nil, err
	}

	return n, nil
}
