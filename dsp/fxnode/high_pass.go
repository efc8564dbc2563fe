package fxnode

// HighPassFilter is a node bound to a high-pass filter processor.
type HighPassFilter struct {
	*Node
}

// NewHighPassFilter creates a high-pass filter node.
func NewHighPassFilter(collab Collaborators, opts ...Option) (*HighPassFilter, error) {
	n, err := New(HighPassDescriptor, collab, opts...)
	if err != nil {
		return nil, err
	}

	return &HighPassFilter{Node: n}, nil
}

// WithCutoffFrequency sets the initial cutoff in Hz.
func WithCutoffFrequency(hz float64) Option {
	return WithParam(ParamCutoffFrequency, hz)
}

// WithResonance sets the initial resonance in dB.
func WithResonance(db float64) Option {
	return WithParam(ParamResonance, db)
}

// CutoffFrequency returns the cutoff in Hz.
func (f *HighPassFilter) CutoffFrequency() float64 {
	return f.bank.Param(ParamCutoffFrequency).Value()
}

// SetCutoffFrequency sets the cutoff, clamped to [10, 22050] Hz.
func (f *HighPassFilter) SetCutoffFrequency(hz float64) {
	f.bank.Param(ParamCutoffFrequency).Set(hz)
}

// Resonance returns the resonance in dB.
func (f *HighPassFilter) Resonance() float64 {
	return f.bank.Param(ParamResonance).Value()
}

// SetResonance sets the resonance, clamped to [-20, 40] dB.
func (f *HighPassFilter) SetResonance(db float64) {
	f.bank.Param(ParamResonance).Set(db)
}
