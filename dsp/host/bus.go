package host

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fxhost/dsp/core"
)

// ErrLengthMismatch is returned when the dry, wet and output blocks differ in length.
var ErrLengthMismatch = errors.New("block length mismatch")

// Bus sums a dry and a wet path, each through its own gain stage.
type Bus struct {
	Dry *Gain
	Wet *Gain

	scratch []float64
}

// NewBus returns a bus with a fully wet default (dry 0, wet 1).
func NewBus() *Bus {
	return &Bus{
		Dry: NewGain(0),
		Wet: NewGain(1),
	}
}

// Mix writes dry*Dry + wet*Wet into dst. dst may alias dry.
func (b *Bus) Mix(dst, dry, wet []float64) error {
	if len(dry) != len(wet) || len(dst) != len(dry) {
		return fmt.Errorf("host: mix %d/%d into %d: %w", len(dry), len(wet), len(dst), ErrLengthMismatch)
	}

	if len(dst) == 0 {
		return nil
	}

	b.scratch = core.EnsureLen(b.scratch, len(wet))
	b.Wet.Process(b.scratch, wet)
	b.Dry.Process(dst, dry)
	vecmath.AddBlockInPlace(dst, b.scratch)

	return nil
}

// Peak returns the largest absolute sample value in block.
func Peak(block []float64) float64 {
	if len(block) == 0 {
		return 0
	}

	return vecmath.MaxAbs(block)
}
