package engine

import (
	"sort"

	"github.com/google/uuid"
)

// A Keyframe pins a value at a point in time. Easing applies to the outgoing
// segment towards the next keyframe; nil means linear.
type Keyframe struct {
	Time   float64
	Value  Value
	Easing Easing
}

// A Track holds the time-sorted keyframes for one (target, property) pair.
// Tracks are built through NewTrack and never mutated afterwards; an edit
// rebuilds the track and replaces it in its timeline by id, so the sorted
// invariant holds by construction.
type Track struct {
	ID         string
	Target     string
	Property   string
	Keyframes  []Keyframe
	MotionPath *MotionPathConfig
}

// TrackOptions carries the inputs for NewTrack.
type TrackOptions struct {
	ID         string
	Target     string
	Property   string
	Keyframes  []Keyframe
	MotionPath *MotionPathConfig
}

// NewTrack creates a Track with its keyframes sorted ascending by time.
// Equal-time keyframes keep their relative order.
func NewTrack(o TrackOptions) *Track {
	t := new(Track)
	t.ID = o.ID
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Target = o.Target
	t.Property = o.Property
	t.MotionPath = o.MotionPath
	t.Keyframes = make([]Keyframe, len(o.Keyframes))
	copy(t.Keyframes, o.Keyframes)
	for i := range t.Keyframes {
		t.Keyframes[i].Value = normalizeValue(t.Keyframes[i].Value)
	}
	sort.SliceStable(t.Keyframes, func(i, j int) bool {
		return t.Keyframes[i].Time < t.Keyframes[j].Time
	})
	return t
}

// A TrackPlayer evaluates a track's value at arbitrary times.
type TrackPlayer struct {
	track *Track
}

// NewTrackPlayer creates a TrackPlayer over t.
func NewTrackPlayer(t *Track) *TrackPlayer {
	p := new(TrackPlayer)
	p.track = t
	return p
}

// GetValueAtTime returns the value at timeMs, or nil for an empty track.
// Times before the first keyframe hold its value and times after the last
// hold the last value; queries exactly on a keyframe return its value
// verbatim.
func (p *TrackPlayer) GetValueAtTime(timeMs float64) Value {
	kfs := p.track.Keyframes
	if len(kfs) == 0 {
		return nil
	}
	if len(kfs) == 1 || timeMs <= kfs[0].Time {
		return kfs[0].Value
	}
	last := kfs[len(kfs)-1]
	if timeMs >= last.Time {
		return last.Value
	}

	for i := 0; i < len(kfs)-1; i++ {
		a, b := kfs[i], kfs[i+1]
		if timeMs < a.Time || timeMs >= b.Time {
			continue
		}
		raw := (timeMs - a.Time) / (b.Time - a.Time)
		if raw == 0 {
			return a.Value
		}
		f := raw
		if a.Easing != nil {
			f = a.Easing.Ease(raw)
		}
		return Interpolate(a.Value, b.Value, f)
	}

	return last.Value
}

// GetDuration returns the time of the last keyframe, or 0 for an empty track.
func (p *TrackPlayer) GetDuration() float64 {
	kfs := p.track.Keyframes
	if len(kfs) == 0 {
		return 0
	}
	return kfs[len(kfs)-1].Time
}
