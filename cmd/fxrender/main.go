// Command fxrender renders a WAV file through a bypassable effect.
//
// Usage:
//
//	fxrender -effect peak-limiter -param preGain=6 input.wav output.wav
//	fxrender -effect high-pass -param cutoffFrequency=200 -mix 50 in.wav out.wav
//	fxrender -preset limiter.json -play input.wav output.wav
//
// The effect itself runs in SoX; the dry/wet mix and bypass are applied here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-fxhost/dsp/backend/otoplay"
	"github.com/cwbudde/algo-fxhost/dsp/backend/soxfx"
	"github.com/cwbudde/algo-fxhost/dsp/core"
	"github.com/cwbudde/algo-fxhost/dsp/fxnode"
	"github.com/cwbudde/algo-fxhost/dsp/host"
)

const minRequiredArgs = 2

type options struct {
	effect  string
	preset  string
	mix     float64
	bypass  bool
	params  paramList
	soxPath string
	play    bool
	verbose bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts options

	flag.StringVar(&opts.effect, "effect", fxnode.TypePeakLimiter, "Effect type (see fxinfo -list)")
	flag.StringVar(&opts.preset, "preset", "", "JSON preset file; overrides -effect")
	flag.Float64Var(&opts.mix, "mix", math.NaN(), "Dry/wet mix in percent (0 = dry, 100 = wet)")
	flag.BoolVar(&opts.bypass, "bypass", false, "Bypass the effect (dry output)")
	flag.Var(&opts.params, "param", "Parameter override name=value (repeatable)")
	flag.StringVar(&opts.soxPath, "sox", "", "Path to the sox binary")
	flag.BoolVar(&opts.play, "play", false, "Play the result through the default audio device")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return render(ctx, args[0], args[1], opts)
}

func render(ctx context.Context, inputPath, outputPath string, opts options) error {
	input, err := readWAV(inputPath)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Input: %s (%d Hz, %d channels, %d-bit, %d frames)",
			inputPath, input.sampleRate, input.channels, input.bitDepth, input.frames())
	}

	preset, err := resolvePreset(opts)
	if err != nil {
		return err
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(input.sampleRate)),
		core.WithChannels(input.channels),
	)

	proc, err := soxfx.New(preset.Type, cfg, soxfx.WithSoxPath(opts.soxPath))
	if err != nil {
		return err
	}

	bus := host.NewBus()

	node, err := buildNode(fxnode.DefaultRegistry(), preset, fxnode.Collaborators{
		Processor: proc,
		Dry:       bus.Dry,
		Wet:       bus.Wet,
	}, opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Effect: %s, started %t, mix %.1f%%", node.Type(), node.IsStarted(), node.Mix())
		for name, v := range node.Params().Values() {
			log.Printf("  %s = %g", name, v)
		}
	}

	start := time.Now()

	wet := make([]float64, len(input.samples))
	if wetActive(bus) {
		err = proc.Check()
		if err != nil {
			return err
		}

		if opts.verbose {
			log.Printf("SoX effects: %v", proc.EffectArgs())
		}

		wet, err = proc.Process(ctx, input.samples)
		if err != nil {
			return err
		}
	}

	out := make([]float64, len(input.samples))

	err = bus.Mix(out, input.samples, wet)
	if err != nil {
		return err
	}

	err = writeWAV(outputPath, input.withSamples(out))
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s, dry %.2f wet %.2f, peak %.1f dBFS, %.2fs\n",
		node.Type(), bus.Dry.Gain(), bus.Wet.Gain(), peakDBFS(out), time.Since(start).Seconds())

	if !opts.play {
		return nil
	}

	return play(ctx, cfg, input.samples, wet, bus)
}

func play(ctx context.Context, cfg core.ProcessorConfig, dry, wet []float64, bus *host.Bus) error {
	deck, err := otoplay.Open(cfg, dry, wet)
	if err != nil {
		return err
	}
	defer func() { _ = deck.Close() }()

	deck.Dry.SetGain(bus.Dry.Gain())
	deck.Wet.SetGain(bus.Wet.Gain())
	deck.Play()

	return deck.Wait(ctx)
}
