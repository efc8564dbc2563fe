package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fxhost/dsp/param"
)

var _ param.Processor = (*ParamTable)(nil)

func TestParamTable(t *testing.T) {
	t.Parallel()

	tbl := NewParamTable()

	_, ok := tbl.Parameter(0)
	assert.False(t, ok)

	tbl.SetParameter(0, 0.012)
	tbl.SetParameter(2, -6)
	tbl.SetParameter(0, 0.02)

	v, ok := tbl.Parameter(0)
	require.True(t, ok)
	assert.InDelta(t, 0.02, float64(v), 1e-7)

	assert.EqualValues(t, 3, tbl.Writes())
	assert.Equal(t, map[uint32]float32{0: 0.02, 2: -6}, tbl.Snapshot())
}

func TestParamTableDrivenByBank(t *testing.T) {
	t.Parallel()

	tbl := NewParamTable()

	bank, err := param.NewBank(tbl,
		param.Spec{ID: 0, Name: "cutoffFrequency", Min: 10, Max: 22050, Default: 6900},
		param.Spec{ID: 1, Name: "resonance", Min: -20, Max: 40, Default: 0},
	)
	require.NoError(t, err)

	bank.Set("cutoffFrequency", 5)

	v, ok := tbl.Parameter(0)
	require.True(t, ok)
	assert.InDelta(t, 10.0, float64(v), 0)
}
