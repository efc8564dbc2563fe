package host

import (
	"math"
	"sync"
	"sync/atomic"
)

// ParamTable is engine-side parameter storage for one effect unit. It
// implements param.Processor and can be read concurrently from a render
// goroutine.
type ParamTable struct {
	values sync.Map // uint32 -> *atomic.Uint32
	writes atomic.Int64
}

// NewParamTable returns an empty table.
func NewParamTable() *ParamTable {
	return &ParamTable{}
}

// SetParameter stores value under id.
func (t *ParamTable) SetParameter(id uint32, value float32) {
	slot, ok := t.values.Load(id)
	if !ok {
		slot, _ = t.values.LoadOrStore(id, new(atomic.Uint32))
	}

	slot.(*atomic.Uint32).Store(math.Float32bits(value))
	t.writes.Add(1)
}

// Parameter returns the last value written under id.
func (t *ParamTable) Parameter(id uint32) (float32, bool) {
	slot, ok := t.values.Load(id)
	if !ok {
		return 0, false
	}

	return math.Float32frombits(slot.(*atomic.Uint32).Load()), true
}

// Writes returns the total number of parameter writes.
func (t *ParamTable) Writes() int64 {
	return t.writes.Load()
}

// Snapshot copies every stored parameter.
func (t *ParamTable) Snapshot() map[uint32]float32 {
	out := map[uint32]float32{}
	t.values.Range(func(k, v any) bool {
		out[k.(uint32)] = math.Float32frombits(v.(*atomic.Uint32).Load())
		return true
	})

	return out
}
