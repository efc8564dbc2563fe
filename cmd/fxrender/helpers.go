package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-fxhost/dsp/core"
	"github.com/cwbudde/algo-fxhost/dsp/fxnode"
	"github.com/cwbudde/algo-fxhost/dsp/host"
)

const wavFormatPCM = 1

var (
	errUnknownParam   = errors.New("unknown parameter")
	errUnsupportedWAV = errors.New("unsupported WAV encoding, need signed integer PCM above 8 bits")
)

// paramList collects repeated -param name=value flags.
type paramList []namedParam

type namedParam struct {
	name  string
	value float64
}

func (p *paramList) String() string {
	if p == nil {
		return ""
	}

	parts := make([]string, len(*p))
	for i, np := range *p {
		parts[i] = np.name + "=" + strconv.FormatFloat(np.value, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (p *paramList) Set(s string) error {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}

	*p = append(*p, namedParam{name: name, value: v})

	return nil
}

// wavData is a decoded WAV file as interleaved float samples.
type wavData struct {
	sampleRate int
	channels   int
	bitDepth   int
	samples    []float64
}

func (w wavData) frames() int {
	if w.channels == 0 {
		return 0
	}

	return len(w.samples) / w.channels
}

func (w wavData) withSamples(samples []float64) wavData {
	w.samples = samples
	return w
}

func readWAV(path string) (wavData, error) {
	f, err := os.Open(path)
	if err != nil {
		return wavData{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return wavData{}, fmt.Errorf("invalid WAV file: %s", path)
	}

	if decoder.WavAudioFormat != wavFormatPCM {
		return wavData{}, fmt.Errorf("%w: format tag %d in %s", errUnsupportedWAV, decoder.WavAudioFormat, path)
	}

	if decoder.BitDepth <= 8 {
		return wavData{}, fmt.Errorf("%w: %d-bit samples in %s", errUnsupportedWAV, decoder.BitDepth, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return wavData{}, fmt.Errorf("failed to read audio data: %w", err)
	}

	bitDepth := int(decoder.BitDepth)

	return wavData{
		sampleRate: buf.Format.SampleRate,
		channels:   buf.Format.NumChannels,
		bitDepth:   bitDepth,
		samples:    core.IntToFloat(nil, buf.Data, bitDepth),
	}, nil
}

// writeWAV writes data as integer PCM at its bit depth.
func writeWAV(path string, data wavData) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, data.sampleRate, data.bitDepth, data.channels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: data.channels, SampleRate: data.sampleRate},
		Data:           core.FloatToInt(nil, data.samples, data.bitDepth),
		SourceBitDepth: data.bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}

// wetActive reports whether the wet path is audible and needs rendering.
func wetActive(bus *host.Bus) bool {
	return bus.Wet.Gain() > 0
}

// peakDBFS returns the block peak in dB relative to full scale.
func peakDBFS(block []float64) float64 {
	return core.LinearToDB(host.Peak(block))
}

// resolvePreset returns the preset file if one is given, otherwise an
// empty preset for the -effect type.
func resolvePreset(opts options) (fxnode.Preset, error) {
	if opts.preset == "" {
		return fxnode.Preset{Type: opts.effect}, nil
	}

	return fxnode.LoadPreset(opts.preset)
}

// buildNode creates the node from the preset, then applies command-line
// overrides on top.
func buildNode(reg *fxnode.Registry, preset fxnode.Preset, collab fxnode.Collaborators, opts options) (*fxnode.Node, error) {
	node, err := reg.NewNodeFromPreset(preset, collab)
	if err != nil {
		return nil, err
	}

	for _, p := range opts.params {
		if !node.Set(p.name, p.value) {
			return nil, fmt.Errorf("%w %q for %s", errUnknownParam, p.name, node.Type())
		}
	}

	if !math.IsNaN(opts.mix) {
		if node.IsStarted() {
			node.SetMix(opts.mix)
		} else {
			// Stopped: the override becomes the mix restored on start.
			node.Start()
			node.SetMix(opts.mix)
			node.Stop()
		}
	}

	if opts.bypass {
		node.Stop()
	}

	return node, nil
}
