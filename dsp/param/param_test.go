package param

import (
	"errors"
	"math"
	"testing"
)

type write struct {
	id    uint32
	value float32
}

// recordingProcessor keeps every parameter write in order.
type recordingProcessor struct {
	writes []write
}

func (r *recordingProcessor) SetParameter(id uint32, value float32) {
	r.writes = append(r.writes, write{id: id, value: value})
}

func (r *recordingProcessor) last() write {
	return r.writes[len(r.writes)-1]
}

var attackSpec = Spec{ID: 0, Name: "attackTime", Unit: "s", Min: 0.001, Max: 0.03, Default: 0.012}

func TestNewForwardsDefault(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}

	p, err := New(proc, attackSpec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if p.Value() != 0.012 {
		t.Fatalf("Value() = %v, want 0.012", p.Value())
	}

	if len(proc.writes) != 1 || proc.last() != (write{0, float32(0.012)}) {
		t.Fatalf("writes = %+v, want one write of the default", proc.writes)
	}
}

func TestNewClampsOutOfRangeDefault(t *testing.T) {
	t.Parallel()

	spec := attackSpec
	spec.Default = 1

	p, err := New(&recordingProcessor{}, spec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if p.Value() != 0.03 {
		t.Fatalf("Value() = %v, want 0.03", p.Value())
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		proc Processor
		spec Spec
		want error
	}{
		{name: "nil processor", proc: nil, spec: attackSpec, want: ErrNilProcessor},
		{name: "inverted range", proc: &recordingProcessor{}, spec: Spec{Name: "x", Min: 1, Max: 0}, want: ErrInvalidRange},
		{name: "nan bound", proc: &recordingProcessor{}, spec: Spec{Name: "x", Min: math.NaN(), Max: 1}, want: ErrInvalidRange},
		{name: "inf bound", proc: &recordingProcessor{}, spec: Spec{Name: "x", Min: 0, Max: math.Inf(1)}, want: ErrInvalidRange},
		{name: "empty name", proc: &recordingProcessor{}, spec: Spec{Min: 0, Max: 1}, want: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.proc, tt.spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetClampsAndForwards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		in   float64
		want float64
	}{
		{name: "attack above max", spec: attackSpec, in: 0.05, want: 0.03},
		{name: "attack below min", spec: attackSpec, in: 0, want: 0.001},
		{name: "attack in range", spec: attackSpec, in: 0.02, want: 0.02},
		{name: "decay above max", spec: Spec{ID: 1, Name: "decayTime", Min: 0.001, Max: 0.06, Default: 0.024}, in: 1, want: 0.06},
		{name: "pre gain below min", spec: Spec{ID: 2, Name: "preGain", Min: -40, Max: 40}, in: -100, want: -40},
		{name: "pre gain +inf", spec: Spec{ID: 2, Name: "preGain", Min: -40, Max: 40}, in: math.Inf(1), want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			proc := &recordingProcessor{}

			p, err := New(proc, tt.spec)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			p.Set(tt.in)

			if got := p.Value(); got != tt.want {
				t.Fatalf("Value() = %v, want %v", got, tt.want)
			}

			if got := proc.last(); got.id != tt.spec.ID || got.value != float32(tt.want) {
				t.Fatalf("last write = %+v, want {%d %v}", got, tt.spec.ID, float32(tt.want))
			}
		})
	}
}

func TestSetInRangeIsPlainWrite(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}

	p, err := New(proc, attackSpec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p.Set(0.02)
	p.Set(0.02)

	if p.Value() != 0.02 {
		t.Fatalf("Value() = %v, want 0.02", p.Value())
	}

	if len(proc.writes) != 3 {
		t.Fatalf("got %d writes, want 3", len(proc.writes))
	}
}

func TestSetIgnoresNaN(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}

	p, err := New(proc, attackSpec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p.Set(math.NaN())

	if p.Value() != 0.012 {
		t.Fatalf("Value() = %v, want 0.012", p.Value())
	}

	if len(proc.writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(proc.writes))
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	p, err := New(&recordingProcessor{}, attackSpec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p.Set(0.001)
	p.Reset()

	if p.Value() != attackSpec.Default {
		t.Fatalf("Value() = %v, want %v", p.Value(), attackSpec.Default)
	}
}
