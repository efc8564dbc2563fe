// Package otoplay plays a dry and a wet signal path through two oto players,
// using each player's volume as the path's gain element.
package otoplay

import "github.com/cwbudde/algo-fxhost/dsp/core"

// VolumeSetter is the volume control of a playing stream, such as oto.Player.
type VolumeSetter interface {
	SetVolume(volume float64)
}

// Gain adapts a VolumeSetter to a bypass gain element.
type Gain struct {
	target VolumeSetter
}

// NewGain wraps target.
func NewGain(target VolumeSetter) *Gain {
	return &Gain{target: target}
}

// SetGain forwards the gain as the player volume, limited to [0, 1].
func (g *Gain) SetGain(gain float32) {
	g.target.SetVolume(core.Clamp(float64(gain), 0, 1))
}
