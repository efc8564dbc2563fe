package fxnode

// PeakLimiter is a node bound to a peak limiter processor.
//
//   - attack time: 0.001 to 0.03 s (default 0.012)
//   - decay time: 0.001 to 0.06 s (default 0.024)
//   - pre-gain: -40 to 40 dB (default 0)
type PeakLimiter struct {
	*Node
}

// NewPeakLimiter creates a peak limiter node.
func NewPeakLimiter(collab Collaborators, opts ...Option) (*PeakLimiter, error) {
	n, err := New(PeakLimiterDescriptor, collab, opts...)
	if err != nil {
		return nil, err
	}

	return &PeakLimiter{Node: n}, nil
}

// WithAttackTime sets the initial attack time in seconds.
func WithAttackTime(seconds float64) Option {
	return WithParam(ParamAttackTime, seconds)
}

// WithDecayTime sets the initial decay time in seconds.
func WithDecayTime(seconds float64) Option {
	return WithParam(ParamDecayTime, seconds)
}

// WithPreGain sets the initial pre-gain in dB.
func WithPreGain(db float64) Option {
	return WithParam(ParamPreGain, db)
}

// AttackTime returns the attack time in seconds.
func (l *PeakLimiter) AttackTime() float64 {
	return l.bank.Param(ParamAttackTime).Value()
}

// SetAttackTime sets the attack time, clamped to [0.001, 0.03] s.
func (l *PeakLimiter) SetAttackTime(seconds float64) {
	l.bank.Param(ParamAttackTime).Set(seconds)
}

// DecayTime returns the decay time in seconds.
func (l *PeakLimiter) DecayTime() float64 {
	return l.bank.Param(ParamDecayTime).Value()
}

// SetDecayTime sets the decay time, clamped to [0.001, 0.06] s.
func (l *PeakLimiter) SetDecayTime(seconds float64) {
	l.bank.Param(ParamDecayTime).Set(seconds)
}

// PreGain returns the pre-gain in dB.
func (l *PeakLimiter) PreGain() float64 {
	return l.bank.Param(ParamPreGain).Value()
}

// SetPreGain sets the pre-gain, clamped to [-40, 40] dB.
func (l *PeakLimiter) SetPreGain(db float64) {
	l.bank.Param(ParamPreGain).Set(db)
}
