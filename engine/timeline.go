package engine

import (
	"github.com/google/uuid"

	"github.com/vectorstudio/animtx/util"
)

// PlaybackState identifies where a timeline is in its lifecycle.
type PlaybackState string

const (
	StateIdle    PlaybackState = "idle"
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
	StateStopped PlaybackState = "stopped"
)

// Direction of playback.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Config holds a timeline's playback settings. A zero Duration derives the
// duration from the longest track. Loop counts boundary wraps: 0 plays a
// single pass, -1 loops forever, n wraps n times. A zero Speed plays at 1x.
// Alternate reflects the direction at each boundary instead of wrapping.
type Config struct {
	Duration  float64
	Loop      int
	Speed     float64
	Alternate bool
}

// A Timeline aggregates tracks that share one playback clock and exposes the
// play/pause/stop/seek/tick state machine driven by a host frame loop.
type Timeline struct {
	ID     string
	Name   string
	Config Config
	Tracks []*Track

	CurrentTime float64
	Playback    PlaybackState
	Direction   Direction

	OnComplete func()
	OnUpdate   func(State)

	remaining int
	ticking   bool
}

// NewTimeline creates an empty timeline. An empty id is replaced with a
// generated one.
func NewTimeline(id, name string, config Config) *Timeline {
	t := new(Timeline)
	t.ID = id
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Name = name
	t.Config = config
	t.Playback = StateIdle
	t.Direction = Forward
	t.remaining = config.Loop
	return t
}

// AddTrack adds tr to the timeline. A track with the same id replaces the
// existing one, which is how tracks rebuilt through NewTrack land after an
// edit.
func (t *Timeline) AddTrack(tr *Track) {
	for i, existing := range t.Tracks {
		if existing.ID == tr.ID {
			t.Tracks[i] = tr
			return
		}
	}
	t.Tracks = append(t.Tracks, tr)
}

// RemoveTrack removes the track with the given id, if present.
func (t *Timeline) RemoveTrack(id string) {
	for i, tr := range t.Tracks {
		if tr.ID == id {
			t.Tracks = append(t.Tracks[:i], t.Tracks[i+1:]...)
			return
		}
	}
}

// Duration returns the configured duration, or the longest track duration
// when none is configured.
func (t *Timeline) Duration() float64 {
	if t.Config.Duration > 0 {
		return t.Config.Duration
	}
	max := 0.0
	for _, tr := range t.Tracks {
		if d := NewTrackPlayer(tr).GetDuration(); d > max {
			max = d
		}
	}
	return max
}

// Play starts or resumes playback. Time only advances through Tick. Starting
// over from idle or stopped resets the loop budget.
func (t *Timeline) Play() {
	if t.Playback == StatePlaying {
		return
	}
	if t.Playback != StatePaused {
		t.remaining = t.Config.Loop
	}
	t.Playback = StatePlaying
}

// Pause halts playback keeping the current time.
func (t *Timeline) Pause() {
	if t.Playback == StatePlaying {
		t.Playback = StatePaused
	}
}

// Stop halts playback and resets the clock and direction.
func (t *Timeline) Stop() {
	t.Playback = StateStopped
	t.CurrentTime = 0
	t.Direction = Forward
}

// Seek moves the clock, clamped to [0, duration], without changing the
// playback state.
func (t *Timeline) Seek(timeMs float64) {
	t.CurrentTime = util.Clamp(timeMs, 0, t.Duration())
}

// Reverse flips the playback direction in place.
func (t *Timeline) Reverse() {
	t.Direction = -t.Direction
}

// Tick advances the clock by deltaMs of host time, scaled by speed and
// direction. It is a no-op unless the timeline is playing. Callbacks run
// synchronously; a nested Tick from inside a callback is ignored.
func (t *Timeline) Tick(deltaMs float64) {
	if t.Playback != StatePlaying || t.ticking {
		return
	}
	t.ticking = true
	defer func() { t.ticking = false }()

	duration := t.Duration()
	if duration <= 0 {
		t.complete(0)
		return
	}

	speed := t.Config.Speed
	if speed == 0 {
		speed = 1
	}
	next := t.CurrentTime + deltaMs*speed*float64(t.Direction)

	for next < 0 || next > duration {
		if t.Config.Loop == 0 || (t.Config.Loop > 0 && t.remaining <= 0) {
			next = util.Clamp(next, 0, duration)
			t.complete(next)
			return
		}
		if t.Config.Alternate {
			if next > duration {
				next = 2*duration - next
			} else {
				next = -next
			}
			t.Direction = -t.Direction
		} else {
			if next > duration {
				next -= duration
			} else {
				next += duration
			}
		}
		if t.Config.Loop > 0 {
			t.remaining--
		}
	}

	t.CurrentTime = next
	t.update()
}

// GetStateAtTime computes the value of every track at timeMs. It is a pure
// query and never touches the playback clock. Tracks with no value at timeMs
// leave their property unset.
func (t *Timeline) GetStateAtTime(timeMs float64) State {
	state := make(State)
	for _, tr := range t.Tracks {
		v := NewTrackPlayer(tr).GetValueAtTime(timeMs)
		if v == nil {
			continue
		}
		state.set(tr.Target, tr.Property, v)
	}
	return state
}

func (t *Timeline) complete(at float64) {
	t.CurrentTime = at
	t.Playback = StateStopped
	t.update()
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

func (t *Timeline) update() {
	if t.OnUpdate != nil {
		t.OnUpdate(t.GetStateAtTime(t.CurrentTime))
	}
}
