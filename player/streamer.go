package player

import (
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/vectorstudio/animtx/engine"
)

// A FrameMessage is one published animation frame: the player's runtime clock
// and the computed state for that instant.
type FrameMessage struct {
	TimeMs int64        `json:"time"`
	State  engine.State `json:"state"`
}

// Streamer that publishes animation state frames to embedded players.
type Streamer struct {
	config  Config
	client  mqtt.Client
	source  StateSource
	control *Control

	// OnFrame, if set, receives each encoded frame as well (the websocket
	// feed uses it).
	OnFrame func([]byte)
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, source StateSource) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.source = source
	s.control = NewControl(config, client)
	return s
}

// Subscribe attaches the control subscription once the client is connected.
func (s *Streamer) Subscribe() {
	s.control.Subscribe()
}

// SendFrame advances the source by deltaMs and publishes the resulting state.
func (s *Streamer) SendFrame(deltaMs float64, runtimeMs int64) {
	state := s.source.CalculateState(deltaMs)
	b, err := json.Marshal(FrameMessage{TimeMs: runtimeMs, State: state})
	if err != nil {
		log.Printf("Marshal frame: %v", err)
		return
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
	if s.OnFrame != nil {
		s.OnFrame(b)
	}
}

// Run causes the Streamer to send frames continuously, applying control
// commands between frames so all timeline mutation stays on this goroutine.
func (s *Streamer) Run() {
	frameRate := s.config.Player.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	start := time.Now()
	last := start
	for {
		select {
		case now := <-publishTimer.C:
			delta := now.Sub(last)
			last = now
			s.SendFrame(float64(delta)/float64(time.Millisecond), now.Sub(start).Milliseconds())
		case cmd := <-s.control.Commands:
			s.apply(cmd)
		}
	}
}

func (s *Streamer) apply(cmd Command) {
	t := s.source.Timeline()
	if t == nil {
		return
	}
	switch cmd.Type {
	case "play":
		t.Play()
	case "pause":
		t.Pause()
	case "stop":
		t.Stop()
	case "seek":
		t.Seek(cmd.Time)
	case "reverse":
		t.Reverse()
	case "speed":
		t.Config.Speed = cmd.Speed
	default:
		log.Printf("Unknown command %q", cmd.Type)
	}
}
