package player

import (
	"math"
	"testing"

	"github.com/vectorstudio/animtx/engine"
)

func sceneTimeline(t *testing.T, id string, from, to float64) *engine.TimelineDefinition {
	t.Helper()
	tl := engine.NewTimeline(id, "", engine.Config{})
	tl.AddTrack(engine.NewTrack(engine.TrackOptions{
		ID:       "opacity",
		Target:   "box",
		Property: "opacity",
		Keyframes: []engine.Keyframe{
			{Time: 0, Value: from},
			{Time: 1000, Value: to},
		},
	}))
	def, err := engine.SerializeTimeline(tl)
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestTimelineSourcePlays(t *testing.T) {
	tl := engine.NewTimeline("tl", "", engine.Config{})
	tl.AddTrack(engine.NewTrack(engine.TrackOptions{
		ID:       "x",
		Target:   "box",
		Property: "x",
		Keyframes: []engine.Keyframe{
			{Time: 0, Value: 0.0},
			{Time: 1000, Value: 100.0},
		},
	}))

	s := NewTimelineSource(tl)
	state := s.CalculateState(500)
	got, ok := state.Get("box", "x").(float64)
	if !ok || math.Abs(got-50) > 1e-6 {
		t.Errorf("expected 50, got %v", state.Get("box", "x"))
	}
	if s.Timeline() != tl {
		t.Error("expected the wrapped timeline")
	}
}

func TestControllerPlaysScenesInOrder(t *testing.T) {
	seq := &engine.SequenceDefinition{
		ID: "seq",
		Scenes: []engine.SceneDefinition{
			{
				ID:         "a",
				Timeline:   sceneTimeline(t, "a", 0, 1),
				Transition: &engine.TransitionDefinition{Type: "fade", Duration: 200},
			},
			{ID: "static", Timeline: nil},
			{ID: "b", Timeline: sceneTimeline(t, "b", 1, 0)},
		},
	}

	c, err := NewController(seq)
	if err != nil {
		t.Fatal(err)
	}

	state := c.CalculateState(500)
	got, ok := state.Get("box", "opacity").(float64)
	if !ok || math.Abs(got-0.5) > 1e-6 {
		t.Errorf("expected scene a midpoint, got %v", state.Get("box", "opacity"))
	}

	// Finish scene a; the skipped static scene must not stall the fade into b.
	c.CalculateState(600)
	mid := c.CalculateState(100)
	if mid.Get("box", "opacity") == nil {
		t.Fatal("expected a blended state during the transition")
	}

	c.CalculateState(200) // fade completes
	state = c.CalculateState(300)
	got, ok = state.Get("box", "opacity").(float64)
	if !ok {
		t.Fatal("expected scene b state")
	}
	if c.Timeline() == nil || c.Timeline().ID != "b" {
		t.Errorf("expected scene b in control, got %+v", c.Timeline())
	}
	if got > 1 || got < 0 {
		t.Errorf("scene b opacity out of range: %g", got)
	}
}

func TestControllerInstantTransition(t *testing.T) {
	seq := &engine.SequenceDefinition{
		ID: "seq",
		Scenes: []engine.SceneDefinition{
			{ID: "a", Timeline: sceneTimeline(t, "a", 0, 1)},
			{ID: "b", Timeline: sceneTimeline(t, "b", 1, 0)},
		},
	}

	c, err := NewController(seq)
	if err != nil {
		t.Fatal(err)
	}

	c.CalculateState(1500) // scene a completes; no transition configured
	if c.Timeline() == nil || c.Timeline().ID != "b" {
		t.Errorf("expected instant hand-over to b, got %+v", c.Timeline())
	}
}

func TestControllerHoldsFinalState(t *testing.T) {
	seq := &engine.SequenceDefinition{
		ID:     "seq",
		Scenes: []engine.SceneDefinition{{ID: "a", Timeline: sceneTimeline(t, "a", 0, 1)}},
	}

	c, err := NewController(seq)
	if err != nil {
		t.Fatal(err)
	}

	c.CalculateState(1500)
	state := c.CalculateState(500)
	if got := state.Get("box", "opacity"); got != 1.0 {
		t.Errorf("expected final value held, got %v", got)
	}
}

func TestControllerLoopsSequence(t *testing.T) {
	seq := &engine.SequenceDefinition{
		ID:     "seq",
		Loop:   true,
		Scenes: []engine.SceneDefinition{{ID: "a", Timeline: sceneTimeline(t, "a", 0, 1)}},
	}

	c, err := NewController(seq)
	if err != nil {
		t.Fatal(err)
	}

	c.CalculateState(1500) // completes and restarts from a fresh copy
	state := c.CalculateState(500)
	got, ok := state.Get("box", "opacity").(float64)
	if !ok || math.Abs(got-0.5) > 1e-6 {
		t.Errorf("expected restarted scene at 0.5, got %v", state.Get("box", "opacity"))
	}
}
