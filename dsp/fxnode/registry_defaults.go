package fxnode

import "github.com/cwbudde/algo-fxhost/dsp/param"

// Built-in effect types.
const (
	TypePeakLimiter = "peak-limiter"
	TypeHighPass    = "high-pass"
)

// Peak limiter parameter names.
const (
	ParamAttackTime = "attackTime"
	ParamDecayTime  = "decayTime"
	ParamPreGain    = "preGain"
)

// High-pass filter parameter names.
const (
	ParamCutoffFrequency = "cutoffFrequency"
	ParamResonance       = "resonance"
)

// PeakLimiterDescriptor mirrors the parameter set of Apple's PeakLimiter
// unit; IDs are the unit's global-scope parameter IDs.
var PeakLimiterDescriptor = Descriptor{
	Type:        TypePeakLimiter,
	Name:        "Peak Limiter",
	Description: "brick-wall peak limiter with pre-gain",
	Params: []param.Spec{
		{ID: 0, Name: ParamAttackTime, Unit: "s", Min: 0.001, Max: 0.03, Default: 0.012},
		{ID: 1, Name: ParamDecayTime, Unit: "s", Min: 0.001, Max: 0.06, Default: 0.024},
		{ID: 2, Name: ParamPreGain, Unit: "dB", Min: -40, Max: 40, Default: 0},
	},
}

// HighPassDescriptor mirrors Apple's HighPassFilter unit.
var HighPassDescriptor = Descriptor{
	Type:        TypeHighPass,
	Name:        "High Pass Filter",
	Description: "resonant second-order high-pass filter",
	Params: []param.Spec{
		{ID: 0, Name: ParamCutoffFrequency, Unit: "Hz", Min: 10, Max: 22050, Default: 6900},
		{ID: 1, Name: ParamResonance, Unit: "dB", Min: -20, Max: 40, Default: 0},
	},
}

// RegisterDefaults adds the built-in effect types to r.
func RegisterDefaults(r *Registry) error {
	for _, desc := range []Descriptor{PeakLimiterDescriptor, HighPassDescriptor} {
		err := r.Register(desc)
		if err != nil {
			return err
		}
	}

	return nil
}

// DefaultRegistry returns a registry holding the built-in effect types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterDefaults(r); err != nil {
		panic("fxnode: register defaults: " + err.Error())
	}

	return r
}
