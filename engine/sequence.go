package engine

import (
	"encoding/json"
	"errors"
)

// SequenceDefinition mirrors a multi-scene sequence: the canvas, the scenes
// in playback order and whether the whole sequence loops. Scene elements
// belong to the editor and its renderers, so they pass through untouched as
// raw JSON.
type SequenceDefinition struct {
	ID     string            `json:"id"`
	Name   string            `json:"name,omitempty"`
	Canvas CanvasDefinition  `json:"canvas"`
	Scenes []SceneDefinition `json:"scenes"`
	Loop   bool              `json:"loop,omitempty"`
}

// CanvasDefinition is the sequence's stage size in pixels.
type CanvasDefinition struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SceneDefinition is one scene of a sequence. Timeline is null for static
// scenes. Transition describes the hand-over into the next scene.
type SceneDefinition struct {
	ID         string                `json:"id"`
	Name       string                `json:"name,omitempty"`
	Elements   []json.RawMessage     `json:"elements"`
	Timeline   *TimelineDefinition   `json:"timeline"`
	Transition *TransitionDefinition `json:"transition,omitempty"`
}

// TransitionDefinition is a scene hand-over: its kind and length in ms.
type TransitionDefinition struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
}

// EncodeSequence serializes def to JSON.
func EncodeSequence(def *SequenceDefinition) ([]byte, error) {
	if def == nil {
		return nil, errors.New("engine: nil sequence definition")
	}
	return json.Marshal(def)
}

// DecodeSequence parses a sequence definition from JSON.
func DecodeSequence(data []byte) (*SequenceDefinition, error) {
	var def SequenceDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
