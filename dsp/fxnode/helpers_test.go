package fxnode

import (
	"testing"

	"github.com/cwbudde/algo-fxhost/dsp/host"
)

// testRig is a node's collaborators backed by the software host.
type testRig struct {
	table *host.ParamTable
	bus   *host.Bus
}

func newTestRig() *testRig {
	return &testRig{table: host.NewParamTable(), bus: host.NewBus()}
}

func (r *testRig) collab() Collaborators {
	return Collaborators{Processor: r.table, Dry: r.bus.Dry, Wet: r.bus.Wet}
}

func (r *testRig) param(t *testing.T, id uint32) float32 {
	t.Helper()

	v, ok := r.table.Parameter(id)
	if !ok {
		t.Fatalf("parameter %d never written", id)
	}

	return v
}

func floatPtr(v float64) *float64 {
	return &v
}
