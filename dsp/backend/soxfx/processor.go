package soxfx

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sox "github.com/thadeu/go-sox"

	"github.com/cwbudde/algo-fxhost/dsp/core"
	"github.com/cwbudde/algo-fxhost/dsp/fxnode"
	"github.com/cwbudde/algo-fxhost/dsp/host"
	"github.com/cwbudde/algo-fxhost/dsp/param"
)

const (
	minQ = 0.1
	maxQ = 40.0

	// butterworthQ is the Q of a flat second-order response, used at 0 dB resonance.
	butterworthQ = 0.7071

	// limiterCeilingDB is where the compand transfer curve flattens out.
	limiterCeilingDB = "-1"
)

// ErrUnsupportedEffect is returned for effect types SoX cannot render.
var ErrUnsupportedEffect = errors.New("unsupported effect type")

// Option configures a Processor.
type Option func(*Processor)

// WithSoxPath overrides the sox binary location.
func WithSoxPath(path string) Option {
	return func(p *Processor) {
		if path != "" {
			p.soxPath = path
		}
	}
}

// Processor is an external effect unit backed by SoX.
type Processor struct {
	desc    fxnode.Descriptor
	cfg     core.ProcessorConfig
	params  *host.ParamTable
	soxPath string
}

// New creates a processor for one of the built-in effect types.
func New(effectType string, cfg core.ProcessorConfig, opts ...Option) (*Processor, error) {
	var desc fxnode.Descriptor

	switch effectType {
	case fxnode.TypePeakLimiter:
		desc = fxnode.PeakLimiterDescriptor
	case fxnode.TypeHighPass:
		desc = fxnode.HighPassDescriptor
	default:
		return nil, fmt.Errorf("soxfx: %w: %q", ErrUnsupportedEffect, effectType)
	}

	if cfg.SampleRate <= 0 || cfg.Channels <= 0 {
		return nil, fmt.Errorf("soxfx: invalid stream format %+v", cfg)
	}

	p := &Processor{
		desc:    desc,
		cfg:     cfg,
		params:  host.NewParamTable(),
		soxPath: sox.DefaultOptions().SoxPath,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p, nil
}

// SetParameter stores a parameter write for the next rendered block.
func (p *Processor) SetParameter(id uint32, value float32) {
	p.params.SetParameter(id, value)
}

// Type returns the effect type this processor renders.
func (p *Processor) Type() string {
	return p.desc.Type
}

// Check verifies that the sox binary can be executed.
func (p *Processor) Check() error {
	err := sox.CheckSoxInstalled(p.soxPath)
	if err != nil {
		return fmt.Errorf("soxfx: %w", err)
	}

	return nil
}

// EffectArgs returns the SoX effect chain for the current parameters.
func (p *Processor) EffectArgs() []string {
	switch p.desc.Type {
	case fxnode.TypePeakLimiter:
		attack := formatFloat(p.value(fxnode.ParamAttackTime))
		decay := formatFloat(p.value(fxnode.ParamDecayTime))

		return []string{
			"gain", formatFloat(p.value(fxnode.ParamPreGain)),
			"compand", attack + "," + decay,
			"6:-70,-70," + limiterCeilingDB + "," + limiterCeilingDB + ",0," + limiterCeilingDB,
			"0", "-90", attack,
		}
	case fxnode.TypeHighPass:
		q := core.Clamp(butterworthQ*core.DBToLinear(p.value(fxnode.ParamResonance)), minQ, maxQ)

		return []string{
			"highpass", formatFloat(p.value(fxnode.ParamCutoffFrequency)),
			formatFloat(q) + "q",
		}
	}

	return nil
}

// Process renders an interleaved block through SoX. The result has the
// same length as block: extra output is dropped, missing output is
// zero-filled.
//
// Input is streamed to SoX one processor block at a time and ctx is checked
// before each write; on cancellation the SoX process is killed. Waiting for
// the output of the last block is not interruptible.
func (p *Processor) Process(ctx context.Context, block []float64) ([]float64, error) {
	if len(block) == 0 {
		return nil, nil
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("soxfx: %w", err)
	}

	opts := sox.DefaultOptions()
	opts.SoxPath = p.soxPath
	opts.Effects = p.EffectArgs()

	format := p.rawFormat()
	conv := sox.NewStreamConverter(format, format).WithOptions(opts)

	err = conv.Start()
	if err != nil {
		return nil, fmt.Errorf("soxfx: render %s: %w", p.desc.Type, err)
	}

	chunk := p.cfg.BlockSamples()
	if chunk <= 0 {
		chunk = len(block)
	}

	var buf []byte
	for off := 0; off < len(block); off += chunk {
		err = ctx.Err()
		if err != nil {
			_ = conv.Close()
			return nil, fmt.Errorf("soxfx: render %s: %w", p.desc.Type, err)
		}

		buf = core.AppendFloat32LE(buf[:0], block[off:min(off+chunk, len(block))])

		_, err = conv.Write(buf)
		if err != nil {
			_ = conv.Close()
			return nil, fmt.Errorf("soxfx: render %s: %w", p.desc.Type, err)
		}
	}

	out, err := conv.Flush()
	if err != nil {
		return nil, fmt.Errorf("soxfx: render %s: %w", p.desc.Type, err)
	}

	rendered := core.DecodeFloat32LE(nil, out)
	if len(rendered) >= len(block) {
		return rendered[:len(block)], nil
	}

	padded := make([]float64, len(block))
	copy(padded, rendered)

	return padded, nil
}

func (p *Processor) rawFormat() sox.AudioFormat {
	return sox.AudioFormat{
		Type:       sox.TYPE_RAW,
		Encoding:   sox.FLOATING_POINT,
		SampleRate: int(p.cfg.SampleRate),
		Channels:   p.cfg.Channels,
		BitDepth:   32,
		Endian:     "little",
	}
}

// value reads a parameter by name, falling back to its default until the
// first write arrives.
func (p *Processor) value(name string) float64 {
	spec, ok := p.desc.Spec(name)
	if !ok {
		return 0
	}

	if v, ok := p.params.Parameter(spec.ID); ok {
		return float64(v)
	}

	return spec.Default
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var _ param.Processor = (*Processor)(nil)
