package player

import (
	"log"

	"github.com/fogleman/ease"

	"github.com/vectorstudio/animtx/engine"
	"github.com/vectorstudio/animtx/util"
)

// A StateSource produces the animation state for each host frame.
type StateSource interface {
	// CalculateState advances by deltaMs of host time and returns the state.
	CalculateState(deltaMs float64) engine.State
	// Timeline returns the timeline currently in control, for playback
	// commands. May be nil.
	Timeline() *engine.Timeline
}

// A TimelineSource plays a single timeline.
type TimelineSource struct {
	timeline *engine.Timeline
}

// NewTimelineSource creates a source that starts t playing immediately.
func NewTimelineSource(t *engine.Timeline) *TimelineSource {
	s := new(TimelineSource)
	s.timeline = t
	t.Play()
	return s
}

func (s *TimelineSource) CalculateState(deltaMs float64) engine.State {
	s.timeline.Tick(deltaMs)
	return s.timeline.GetStateAtTime(s.timeline.CurrentTime)
}

func (s *TimelineSource) Timeline() *engine.Timeline {
	return s.timeline
}

// A Controller plays a sequence's scenes in order. When a scene's timeline
// completes, the next scene's timeline starts and the two states cross-fade
// over the outgoing scene's transition duration.
type Controller struct {
	def *engine.SequenceDefinition

	index    int
	timeline *engine.Timeline
	next     *engine.Timeline

	transition   float64
	transitionMs float64
}

// NewController builds a Controller from a sequence definition. Scenes
// without a timeline are skipped.
func NewController(def *engine.SequenceDefinition) (*Controller, error) {
	c := new(Controller)
	c.def = def
	c.index = -1
	if err := c.advance(); err != nil {
		return nil, err
	}
	return c, nil
}

// advance moves to the next scene that has a timeline, wrapping when the
// sequence loops.
func (c *Controller) advance() error {
	wrapped := false
	for i := c.index + 1; ; i++ {
		if i >= len(c.def.Scenes) {
			if !c.def.Loop || wrapped || len(c.def.Scenes) == 0 {
				return nil
			}
			i = 0
			wrapped = true
		}
		scene := c.def.Scenes[i]
		if scene.Timeline == nil {
			continue
		}
		t, err := engine.DeserializeTimeline(scene.Timeline)
		if err != nil {
			return err
		}
		t.Play()
		c.index = i
		c.next = t
		return nil
	}
}

// transitionDuration returns the outgoing scene's transition length in ms.
func (c *Controller) transitionDuration() float64 {
	if c.index >= 0 && c.index < len(c.def.Scenes) {
		if tr := c.def.Scenes[c.index].Transition; tr != nil {
			return tr.Duration
		}
	}
	return 0
}

// CalculateState advances the sequence by deltaMs and returns the blended
// state, mirroring how a frame mixer fades one source into the next.
func (c *Controller) CalculateState(deltaMs float64) engine.State {
	if c.timeline == nil {
		if c.next == nil {
			return make(engine.State)
		}
		c.timeline = c.next
		c.next = nil
	}

	c.timeline.Tick(deltaMs)
	state := c.timeline.GetStateAtTime(c.timeline.CurrentTime)

	if c.next == nil {
		if c.timeline.Playback == engine.StateStopped {
			// Scene finished; line up the next one and start fading.
			c.transitionMs = c.transitionDuration()
			c.transition = 0
			if err := c.advance(); err != nil {
				log.Printf("Scene %d: %v", c.index+1, err)
				return state
			}
			if c.next == nil {
				return state
			}
			if c.transitionMs <= 0 {
				c.timeline = c.next
				c.next = nil
				return c.timeline.GetStateAtTime(c.timeline.CurrentTime)
			}
		}
		return state
	}

	c.next.Tick(deltaMs)
	nextState := c.next.GetStateAtTime(c.next.CurrentTime)

	c.transition += deltaMs / c.transitionMs
	gain := ease.InOutQuad(util.Clamp01(c.transition))
	blended := engine.BlendStates(state, nextState, gain)

	if c.transition >= 1 {
		c.timeline = c.next
		c.next = nil
		c.transition = 0
	}

	return blended
}

// Timeline returns the scene timeline currently in control.
func (c *Controller) Timeline() *engine.Timeline {
	return c.timeline
}
