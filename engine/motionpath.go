package engine

import (
	"github.com/vectorstudio/animtx/util"
)

// MotionPathProperty marks a track whose values are progress along a path.
const MotionPathProperty = "motionPath"

// MotionPathConfig describes the SVG path a motion-path track moves along.
// Consumers resolve progress to position and rotation from the path geometry
// themselves; the engine only drives the normalised 0..1 progress value.
type MotionPathConfig struct {
	PathData     string  `json:"pathData"`
	AutoRotate   bool    `json:"autoRotate"`
	RotateOffset float64 `json:"rotateOffset"`
}

// NewMotionPathTrack creates a Track whose keyframe values are normalised
// progress along cfg's path. Progress values are clamped to [0,1].
func NewMotionPathTrack(id, target string, cfg MotionPathConfig, keyframes []Keyframe) *Track {
	kfs := make([]Keyframe, len(keyframes))
	copy(kfs, keyframes)
	for i := range kfs {
		if progress, ok := normalizeValue(kfs[i].Value).(float64); ok {
			kfs[i].Value = util.Clamp01(progress)
		}
	}
	config := cfg
	return NewTrack(TrackOptions{
		ID:         id,
		Target:     target,
		Property:   MotionPathProperty,
		Keyframes:  kfs,
		MotionPath: &config,
	})
}

// IsMotionPath reports whether t drives progress along a motion path.
func (t *Track) IsMotionPath() bool {
	return t.Property == MotionPathProperty && t.MotionPath != nil
}
