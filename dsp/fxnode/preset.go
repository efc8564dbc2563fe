package fxnode

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-fxhost/dsp/core"
)

// Preset is the JSON form of a node's settings.
//
// Mix is the live mix. For a bypassed preset RestoreMix is the mix the next
// Start brings back; when it is absent, Mix is used as the restore value and
// the live mix stays at 0.
type Preset struct {
	Type       string             `json:"type"`
	Bypassed   bool               `json:"bypassed,omitempty"`
	Mix        *float64           `json:"mix,omitempty"`
	RestoreMix *float64           `json:"restoreMix,omitempty"`
	Params     map[string]float64 `json:"params,omitempty"`
}

// presetState is the raw JSON shape. Params values may be any JSON type;
// only numbers and bools are kept.
type presetState struct {
	Type       string   `json:"type"`
	Bypassed   bool     `json:"bypassed"`
	Mix        *float64 `json:"mix"`
	RestoreMix *float64 `json:"restoreMix"`
	Params     any      `json:"params"`
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Preset) GetNum(key string, def float64) float64 {
	if p.Params == nil {
		return def
	}

	v, ok := p.Params[key]
	if !ok || !core.IsFinite(v) {
		return def
	}

	return v
}

// ParsePreset decodes a JSON preset.
func ParsePreset(data []byte) (Preset, error) {
	var state presetState

	err := json.Unmarshal(data, &state)
	if err != nil {
		return Preset{}, fmt.Errorf("invalid preset json: %w", err)
	}

	return Preset{
		Type:       state.Type,
		Bypassed:   state.Bypassed,
		Mix:        finiteOrNil(state.Mix),
		RestoreMix: finiteOrNil(state.RestoreMix),
		Params:     parsePresetParams(state.Params),
	}, nil
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || !core.IsFinite(*v) {
		return nil
	}
	return v
}

// LoadPreset reads and decodes a JSON preset file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("fxnode: read preset: %w", err)
	}

	p, err := ParsePreset(data)
	if err != nil {
		return Preset{}, fmt.Errorf("fxnode: %s: %w", path, err)
	}

	return p, nil
}

// Marshal encodes the preset as indented JSON.
func (p Preset) Marshal() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// parsePresetParams extracts numeric parameters from a raw JSON params value.
// Booleans map to 1 and 0; other types are dropped.
func parsePresetParams(raw any) map[string]float64 {
	num := map[string]float64{}

	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return num
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num
}
