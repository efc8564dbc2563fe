package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fxhost/dsp/fxnode"
	"github.com/cwbudde/algo-fxhost/dsp/host"
	"github.com/cwbudde/algo-fxhost/internal/testutil"
)

func testCollab() (fxnode.Collaborators, *host.Bus) {
	bus := host.NewBus()
	return fxnode.Collaborators{
		Processor: host.NewParamTable(),
		Dry:       bus.Dry,
		Wet:       bus.Wet,
	}, bus
}

func TestParamListSet(t *testing.T) {
	var p paramList

	require.NoError(t, p.Set("preGain=6"))
	require.NoError(t, p.Set(" attackTime = 0.02 "))
	assert.Equal(t, paramList{{"preGain", 6}, {"attackTime", 0.02}}, p)
	assert.Equal(t, "preGain=6,attackTime=0.02", p.String())

	assert.Error(t, p.Set("preGain"))
	assert.Error(t, p.Set("=3"))
	assert.Error(t, p.Set("preGain=loud"))
	assert.Len(t, p, 2)
}

func TestReadWAV_FileNotFound(t *testing.T) {
	_, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadWAV_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := readWAV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

// writeTaggedWAV writes integer samples under an arbitrary WAV format tag.
func writeTaggedWAV(t *testing.T, path string, bitDepth, formatTag int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, 8000, bitDepth, 1, formatTag)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           make([]int, 800),
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
}

func TestReadWAV_UnsupportedEncoding(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		bitDepth  int
		formatTag int
	}{
		{name: "unsigned 8-bit", bitDepth: 8, formatTag: wavFormatPCM},
		{name: "ieee float", bitDepth: 32, formatTag: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".wav")
			writeTaggedWAV(t, path, tt.bitDepth, tt.formatTag)

			_, err := readWAV(path)
			require.ErrorIs(t, err, errUnsupportedWAV)
		})
	}

	path := filepath.Join(dir, "pcm24.wav")
	writeTaggedWAV(t, path, 24, wavFormatPCM)

	got, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 24, got.bitDepth)
	assert.Equal(t, 800, got.frames())
}

func TestWetActive(t *testing.T) {
	collab, bus := testCollab()

	node, err := buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: fxnode.TypePeakLimiter}, collab,
		options{mix: 30, bypass: true})
	require.NoError(t, err)
	assert.False(t, wetActive(bus))

	node.SetMix(100)
	assert.False(t, node.IsStarted())
	assert.True(t, wetActive(bus), "a stopped node with a live mix still renders")

	node.SetMix(0)
	assert.False(t, wetActive(bus))
}

func TestPeakDBFS(t *testing.T) {
	assert.InDelta(t, -6.0206, peakDBFS([]float64{0.1, -0.5, 0.25}), 1e-3)
	assert.True(t, math.IsInf(peakDBFS(make([]float64, 4)), -1))
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	left := testutil.Sine(441, 44100, 0.5, 256)
	right := testutil.Sine(882, 44100, 0.25, 256)
	in := wavData{
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
		samples:    testutil.Interleave(left, right),
	}

	require.NoError(t, writeWAV(path, in))

	got, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 44100, got.sampleRate)
	assert.Equal(t, 2, got.channels)
	assert.Equal(t, 16, got.bitDepth)
	assert.Equal(t, 256, got.frames())
	testutil.AssertSliceInDelta(t, in.samples, got.samples, 1.0/32768)
}

func TestBuildNodeDefaults(t *testing.T) {
	collab, bus := testCollab()

	node, err := buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: fxnode.TypeHighPass}, collab,
		options{mix: math.NaN()})
	require.NoError(t, err)

	assert.Equal(t, fxnode.TypeHighPass, node.Type())
	assert.True(t, node.IsStarted())
	assert.InDelta(t, 0.0, float64(bus.Dry.Gain()), 1e-7)
	assert.InDelta(t, 1.0, float64(bus.Wet.Gain()), 1e-7)

	v, ok := node.Value(fxnode.ParamCutoffFrequency)
	require.True(t, ok)
	assert.InDelta(t, 6900.0, v, 1e-9)
}

func TestBuildNodeOverrides(t *testing.T) {
	collab, bus := testCollab()

	opts := options{
		mix:    25,
		params: paramList{{fxnode.ParamPreGain, 80}},
	}

	node, err := buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: fxnode.TypePeakLimiter}, collab, opts)
	require.NoError(t, err)

	v, _ := node.Value(fxnode.ParamPreGain)
	assert.InDelta(t, 40.0, v, 1e-9)
	assert.InDelta(t, 25.0, node.Mix(), 1e-9)
	assert.InDelta(t, 0.75, float64(bus.Dry.Gain()), 1e-6)
	assert.InDelta(t, 0.25, float64(bus.Wet.Gain()), 1e-6)
}

func TestBuildNodeBypass(t *testing.T) {
	collab, bus := testCollab()

	node, err := buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: fxnode.TypePeakLimiter}, collab,
		options{mix: 60, bypass: true})
	require.NoError(t, err)

	assert.False(t, node.IsStarted())
	assert.InDelta(t, 1.0, float64(bus.Dry.Gain()), 1e-7)
	assert.InDelta(t, 0.0, float64(bus.Wet.Gain()), 1e-7)

	node.Start()
	assert.InDelta(t, 60.0, node.Mix(), 1e-9)
}

func TestBuildNodeMixOnBypassedPreset(t *testing.T) {
	collab, _ := testCollab()
	preset := fxnode.Preset{Type: fxnode.TypeHighPass, Bypassed: true}

	node, err := buildNode(fxnode.DefaultRegistry(), preset, collab, options{mix: 40})
	require.NoError(t, err)

	assert.False(t, node.IsStarted())
	node.Start()
	assert.InDelta(t, 40.0, node.Mix(), 1e-9)
}

func TestBuildNodeErrors(t *testing.T) {
	collab, _ := testCollab()

	_, err := buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: "reverb"}, collab, options{mix: math.NaN()})
	require.ErrorIs(t, err, fxnode.ErrUnknownEffect)

	_, err = buildNode(fxnode.DefaultRegistry(), fxnode.Preset{Type: fxnode.TypeHighPass}, collab,
		options{mix: math.NaN(), params: paramList{{"attackTime", 0.01}}})
	require.ErrorIs(t, err, errUnknownParam)
}

func TestResolvePreset(t *testing.T) {
	p, err := resolvePreset(options{effect: fxnode.TypeHighPass})
	require.NoError(t, err)
	assert.Equal(t, fxnode.TypeHighPass, p.Type)

	path := filepath.Join(t.TempDir(), "limiter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"peak-limiter","mix":30,"params":{"preGain":3}}`), 0o644))

	p, err = resolvePreset(options{effect: fxnode.TypeHighPass, preset: path})
	require.NoError(t, err)
	assert.Equal(t, fxnode.TypePeakLimiter, p.Type)
	require.NotNil(t, p.Mix)
	assert.InDelta(t, 30.0, *p.Mix, 1e-9)
	assert.InDelta(t, 3.0, p.GetNum(fxnode.ParamPreGain, 0), 1e-9)
}
