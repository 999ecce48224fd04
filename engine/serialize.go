package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TimelineDefinition is the JSON-safe mirror of a Timeline, the wire format
// shared by storage, export and the embedded player. Runtime fields (clock,
// playback state, callbacks) never appear in it.
type TimelineDefinition struct {
	ID     string            `json:"id"`
	Name   string            `json:"name,omitempty"`
	Config *ConfigDefinition `json:"config,omitempty"`
	Tracks []TrackDefinition `json:"tracks"`
}

// ConfigDefinition mirrors Config on the wire.
type ConfigDefinition struct {
	Duration  float64 `json:"duration,omitempty"`
	Loop      int     `json:"loop,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
	Alternate bool    `json:"alternate,omitempty"`
}

// TrackDefinition mirrors Track on the wire. MotionPath is present only on
// motion-path tracks.
type TrackDefinition struct {
	ID         string               `json:"id"`
	Target     string               `json:"target"`
	Property   string               `json:"property"`
	MotionPath *MotionPathConfig    `json:"motionPathConfig,omitempty"`
	Keyframes  []KeyframeDefinition `json:"keyframes"`
}

// KeyframeDefinition mirrors Keyframe on the wire. Easing is either a bare
// string naming a built-in curve or a cubic-bezier object.
type KeyframeDefinition struct {
	Time   float64         `json:"time"`
	Value  interface{}     `json:"value"`
	Easing json.RawMessage `json:"easing,omitempty"`
}

type bezierDefinition struct {
	Type   string     `json:"type"`
	Points [4]float64 `json:"points"`
}

// SerializeTimeline projects t onto its wire definition. The projection is
// pure and lossless for everything a fresh timeline needs.
func SerializeTimeline(t *Timeline) (*TimelineDefinition, error) {
	def := new(TimelineDefinition)
	def.ID = t.ID
	def.Name = t.Name
	if t.Config != (Config{}) {
		def.Config = &ConfigDefinition{
			Duration:  t.Config.Duration,
			Loop:      t.Config.Loop,
			Speed:     t.Config.Speed,
			Alternate: t.Config.Alternate,
		}
	}
	def.Tracks = make([]TrackDefinition, 0, len(t.Tracks))
	for _, tr := range t.Tracks {
		td, err := serializeTrack(tr)
		if err != nil {
			return nil, err
		}
		def.Tracks = append(def.Tracks, td)
	}
	return def, nil
}

// DeserializeTimeline builds a fresh Timeline from def, idle at time zero.
// Keyframes are re-sorted through NewTrack; the input's ordering is never
// trusted. Structurally invalid definitions return an error.
func DeserializeTimeline(def *TimelineDefinition) (*Timeline, error) {
	if def == nil {
		return nil, errors.New("engine: nil timeline definition")
	}
	var config Config
	if def.Config != nil {
		config = Config{
			Duration:  def.Config.Duration,
			Loop:      def.Config.Loop,
			Speed:     def.Config.Speed,
			Alternate: def.Config.Alternate,
		}
	}
	t := NewTimeline(def.ID, def.Name, config)
	for _, td := range def.Tracks {
		tr, err := deserializeTrack(td)
		if err != nil {
			return nil, err
		}
		t.AddTrack(tr)
	}
	return t, nil
}

func serializeTrack(tr *Track) (TrackDefinition, error) {
	td := TrackDefinition{
		ID:       tr.ID,
		Target:   tr.Target,
		Property: tr.Property,
	}
	if tr.MotionPath != nil {
		config := *tr.MotionPath
		td.MotionPath = &config
	}
	td.Keyframes = make([]KeyframeDefinition, 0, len(tr.Keyframes))
	for _, kf := range tr.Keyframes {
		easing, err := encodeEasing(kf.Easing)
		if err != nil {
			return TrackDefinition{}, fmt.Errorf("engine: track %q: %w", tr.ID, err)
		}
		td.Keyframes = append(td.Keyframes, KeyframeDefinition{
			Time:   kf.Time,
			Value:  kf.Value,
			Easing: easing,
		})
	}
	return td, nil
}

func deserializeTrack(td TrackDefinition) (*Track, error) {
	if td.Target == "" {
		return nil, fmt.Errorf("engine: track %q has no target", td.ID)
	}
	if td.Property == "" {
		return nil, fmt.Errorf("engine: track %q has no property", td.ID)
	}
	kfs := make([]Keyframe, len(td.Keyframes))
	for i, kd := range td.Keyframes {
		easing, err := decodeEasing(kd.Easing)
		if err != nil {
			return nil, fmt.Errorf("engine: track %q: %w", td.ID, err)
		}
		kfs[i] = Keyframe{Time: kd.Time, Value: kd.Value, Easing: easing}
	}
	options := TrackOptions{
		ID:        td.ID,
		Target:    td.Target,
		Property:  td.Property,
		Keyframes: kfs,
	}
	if td.MotionPath != nil {
		config := *td.MotionPath
		options.MotionPath = &config
	}
	return NewTrack(options), nil
}

func encodeEasing(e Easing) (json.RawMessage, error) {
	switch v := e.(type) {
	case nil:
		return nil, nil
	case NamedEasing:
		return json.Marshal(string(v))
	case CubicBezier:
		return json.Marshal(bezierDefinition{
			Type:   "cubic-bezier",
			Points: [4]float64{v.X1, v.Y1, v.X2, v.Y2},
		})
	}
	return nil, fmt.Errorf("unserializable easing %T", e)
}

func decodeEasing(raw json.RawMessage) (Easing, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return NamedEasing(name), nil
	}
	var def bezierDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	if def.Type != "cubic-bezier" {
		return nil, fmt.Errorf("unknown easing type %q", def.Type)
	}
	p := def.Points
	return CubicBezier{X1: p[0], Y1: p[1], X2: p[2], Y2: p[3]}, nil
}

// EncodeTimeline serializes t straight to JSON.
func EncodeTimeline(t *Timeline) ([]byte, error) {
	def, err := SerializeTimeline(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(def)
}

// DecodeTimeline parses JSON into a definition and builds the timeline.
func DecodeTimeline(data []byte) (*Timeline, error) {
	var def TimelineDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return DeserializeTimeline(&def)
}
