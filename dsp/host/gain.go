package host

import (
	"math"
	"sync/atomic"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Gain is a linear gain stage. The zero value is not ready; use NewGain.
type Gain struct {
	bits atomic.Uint32
}

// NewGain returns a gain stage set to g.
func NewGain(g float32) *Gain {
	s := &Gain{}
	s.SetGain(g)
	return s
}

// SetGain publishes a new gain for subsequent blocks.
func (s *Gain) SetGain(g float32) {
	s.bits.Store(math.Float32bits(g))
}

// Gain returns the current gain.
func (s *Gain) Gain() float32 {
	return math.Float32frombits(s.bits.Load())
}

// ProcessInPlace scales block by the current gain.
func (s *Gain) ProcessInPlace(block []float64) {
	vecmath.ScaleBlockInPlace(block, float64(s.Gain()))
}

// Process writes src scaled by the current gain into dst.
// dst and src must have equal length.
func (s *Gain) Process(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, float64(s.Gain()))
}
