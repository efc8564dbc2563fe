package fxnode

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxhost/dsp/bypass"
	"github.com/cwbudde/algo-fxhost/dsp/param"
)

// ErrTypeMismatch is returned when a preset targets a different effect type.
var ErrTypeMismatch = errors.New("preset effect type mismatch")

// Collaborators are the externally owned pieces a node controls.
type Collaborators struct {
	Processor param.Processor
	Dry       bypass.GainElement
	Wet       bypass.GainElement
}

// Option configures a node at construction.
type Option func(*nodeConfig)

type nodeConfig struct {
	mixOpts []bypass.Option
	values  []namedValue
}

type namedValue struct {
	name  string
	value float64
}

// WithMix sets the initial dry/wet mix percentage.
func WithMix(mix float64) Option {
	return func(c *nodeConfig) {
		c.mixOpts = append(c.mixOpts, bypass.WithInitialMix(mix))
	}
}

// WithParam sets an initial parameter value. Unknown names are ignored.
func WithParam(name string, value float64) Option {
	return func(c *nodeConfig) {
		c.values = append(c.values, namedValue{name: name, value: value})
	}
}

// Node is one effect instance: its parameters and its bypass mixer.
type Node struct {
	desc  Descriptor
	bank  *param.Bank
	mixer *bypass.Mixer
}

// New builds a node for desc. Every parameter default is forwarded to the
// processor, then the initial values from opts.
func New(desc Descriptor, collab Collaborators, opts ...Option) (*Node, error) {
	err := desc.Validate()
	if err != nil {
		return nil, fmt.Errorf("fxnode: %w", err)
	}

	var cfg nodeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bank, err := param.NewBank(collab.Processor, desc.Params...)
	if err != nil {
		return nil, fmt.Errorf("fxnode: %s parameters: %w", desc.Type, err)
	}

	mixer, err := bypass.New(collab.Processor, collab.Dry, collab.Wet, cfg.mixOpts...)
	if err != nil {
		return nil, fmt.Errorf("fxnode: %s mixer: %w", desc.Type, err)
	}

	for _, v := range cfg.values {
		bank.Set(v.name, v.value)
	}

	return &Node{desc: desc, bank: bank, mixer: mixer}, nil
}

// Type returns the effect type name.
func (n *Node) Type() string {
	return n.desc.Type
}

// Descriptor returns the effect description.
func (n *Node) Descriptor() Descriptor {
	return n.desc
}

// Params returns the node's parameter bank.
func (n *Node) Params() *param.Bank {
	return n.bank
}

// Mixer returns the node's bypass mixer.
func (n *Node) Mixer() *bypass.Mixer {
	return n.mixer
}

// Set assigns a parameter by name. It reports false for unknown names.
func (n *Node) Set(name string, v float64) bool {
	return n.bank.Set(name, v)
}

// Value returns a parameter by name.
func (n *Node) Value(name string) (float64, bool) {
	return n.bank.Value(name)
}

// Start enables the effect, restoring the mix saved by Stop.
func (n *Node) Start() {
	n.mixer.Start()
}

// Stop bypasses the effect.
func (n *Node) Stop() {
	n.mixer.Stop()
}

// IsStarted reports whether the effect is enabled.
func (n *Node) IsStarted() bool {
	return n.mixer.IsStarted()
}

// SetMix sets the dry/wet mix percentage.
func (n *Node) SetMix(mix float64) {
	n.mixer.SetMix(mix)
}

// Mix returns the dry/wet mix percentage.
func (n *Node) Mix() float64 {
	return n.mixer.Mix()
}

// Apply loads a preset. Parameters missing from the preset keep their
// values. A bypassed preset leaves the node stopped with its restore mix
// saved for the next Start, then applies its live mix.
func (n *Node) Apply(p Preset) error {
	if p.Type != "" && p.Type != n.desc.Type {
		return fmt.Errorf("fxnode: %w: preset %q, node %q", ErrTypeMismatch, p.Type, n.desc.Type)
	}

	for _, prm := range n.bank.Params() {
		spec := prm.Spec()
		if _, ok := p.Params[spec.Name]; ok {
			prm.Set(p.GetNum(spec.Name, spec.Default))
		}
	}

	n.mixer.Start()

	if !p.Bypassed {
		if p.Mix != nil {
			n.mixer.SetMix(*p.Mix)
		}
		return nil
	}

	live, restore := (*float64)(nil), p.Mix
	if p.RestoreMix != nil {
		live, restore = p.Mix, p.RestoreMix
	}

	if restore != nil {
		n.mixer.SetMix(*restore)
	}

	n.mixer.Stop()

	if live != nil {
		n.mixer.SetMix(*live)
	}

	return nil
}

// Snapshot captures the node settings as a preset. A stopped node also
// records the mix Start would restore.
func (n *Node) Snapshot() Preset {
	mix := n.mixer.Mix()
	p := Preset{
		Type:     n.desc.Type,
		Bypassed: n.mixer.IsStopped(),
		Mix:      &mix,
		Params:   n.bank.Values(),
	}

	if p.Bypassed {
		restore := n.mixer.LastKnownMix()
		p.RestoreMix = &restore
	}

	return p
}
