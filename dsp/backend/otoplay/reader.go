package otoplay

import (
	"io"

	"github.com/cwbudde/algo-fxhost/dsp/core"
)

// sampleReader streams float samples as little-endian float32 PCM,
// encoding chunk samples at a time.
type sampleReader struct {
	samples []float64
	pending []byte
	chunk   int
}

func newSampleReader(samples []float64, chunk int) *sampleReader {
	if chunk <= 0 {
		chunk = core.DefaultProcessorConfig().BlockSamples()
	}
	return &sampleReader{samples: samples, chunk: chunk}
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if len(r.samples) == 0 {
			return 0, io.EOF
		}

		n := min(r.chunk, len(r.samples))
		r.pending = core.AppendFloat32LE(r.pending[:0], r.samples[:n])
		r.samples = r.samples[n:]
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}
