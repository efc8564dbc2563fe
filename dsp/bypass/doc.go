// Package bypass blends a dry and a wet signal path behind an opaque effect
// processor and lets the effect be bypassed without losing the configured
// blend.
//
// The Mixer owns no audio. It writes linear gains to two externally owned
// gain elements so that dry + wet == 1 for every mix setting:
//
//	dry = 1 - mix/100
//	wet = mix/100
//
// Stop saves the current mix and silences the wet path; Start restores the
// saved mix. Both are idempotent. SetMix is independent of the
// started/stopped state.
//
// A Mixer is not safe for concurrent use. Control calls must come from a
// single goroutine; the gain elements are expected to publish the values to
// any render goroutine themselves.
package bypass
