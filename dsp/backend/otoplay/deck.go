package otoplay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/cwbudde/algo-fxhost/dsp/core"
)

const pollInterval = 10 * time.Millisecond

// Deck plays a dry and a wet rendition of the same material in sync.
// oto permits one context per process, so open at most one Deck.
type Deck struct {
	ctx *oto.Context
	dry oto.Player
	wet oto.Player

	// Dry and Wet control the player volumes.
	Dry *Gain
	Wet *Gain
}

// Open creates the audio context and both players. dry and wet are
// interleaved samples in cfg's channel layout.
func Open(cfg core.ProcessorConfig, dry, wet []float64) (*Deck, error) {
	if len(dry) != len(wet) {
		return nil, fmt.Errorf("otoplay: dry has %d samples, wet has %d", len(dry), len(wet))
	}

	ctx, ready, err := oto.NewContext(int(cfg.SampleRate), cfg.Channels, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("otoplay: open audio context: %w", err)
	}

	<-ready

	d := &Deck{
		ctx: ctx,
		dry: ctx.NewPlayer(newSampleReader(dry, cfg.BlockSamples())),
		wet: ctx.NewPlayer(newSampleReader(wet, cfg.BlockSamples())),
	}
	d.Dry = NewGain(d.dry)
	d.Wet = NewGain(d.wet)

	return d, nil
}

// Play starts both players.
func (d *Deck) Play() {
	d.dry.Play()
	d.wet.Play()
}

// Wait blocks until both players finish or ctx is done.
func (d *Deck) Wait(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for d.dry.IsPlaying() || d.wet.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return errors.Join(d.dry.Err(), d.wet.Err())
}

// Close releases both players.
func (d *Deck) Close() error {
	return errors.Join(d.dry.Close(), d.wet.Close())
}
