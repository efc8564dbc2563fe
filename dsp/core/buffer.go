package core

import (
	"encoding/binary"
	"math"
)

const bytesPerFloat32 = 4

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// AppendFloat32LE appends src to dst as little-endian 32-bit float PCM.
func AppendFloat32LE(dst []byte, src []float64) []byte {
	var word [bytesPerFloat32]byte
	for _, v := range src {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(float32(v)))
		dst = append(dst, word[:]...)
	}
	return dst
}

// DecodeFloat32LE decodes little-endian 32-bit float PCM into dst, reusing
// its capacity. A trailing partial sample is dropped.
func DecodeFloat32LE(dst []float64, src []byte) []float64 {
	n := len(src) / bytesPerFloat32
	dst = EnsureLen(dst, n)
	for i := range n {
		bits := binary.LittleEndian.Uint32(src[i*bytesPerFloat32:])
		dst[i] = float64(math.Float32frombits(bits))
	}
	return dst
}

// IntToFloat scales integer PCM of the given bit depth into [-1, 1).
func IntToFloat(dst []float64, src []int, bitDepth int) []float64 {
	dst = EnsureLen(dst, len(src))
	scale := 1 / fullScale(bitDepth)
	for i, v := range src {
		dst[i] = float64(v) * scale
	}
	return dst
}

// FloatToInt converts float PCM to integers of the given bit depth,
// clipping to the representable range.
func FloatToInt(dst []int, src []float64, bitDepth int) []int {
	if cap(dst) >= len(src) {
		dst = dst[:len(src)]
	} else {
		dst = make([]int, len(src))
	}
	full := fullScale(bitDepth)
	for i, v := range src {
		dst[i] = int(math.Round(Clamp(v*full, -full, full-1)))
	}
	return dst
}

func fullScale(bitDepth int) float64 {
	if bitDepth <= 1 {
		bitDepth = 16
	}
	return math.Ldexp(1, bitDepth-1)
}
