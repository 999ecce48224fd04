package player

import (
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Command is a playback instruction received on the control topic.
type Command struct {
	Type  string  `json:"type"`
	Time  float64 `json:"time,omitempty"`
	Speed float64 `json:"speed,omitempty"`
}

// Control feeds playback commands from MQTT into the run loop. Messages
// arrive on the mqtt client's goroutine; Commands hands them over to the
// single goroutine that owns the timeline.
type Control struct {
	config   Config
	client   mqtt.Client
	Commands chan Command
}

// NewControl creates an instance of a Control.
func NewControl(config Config, client mqtt.Client) *Control {
	c := new(Control)
	c.config = config
	c.client = client
	c.Commands = make(chan Command, 16)
	return c
}

func (c *Control) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("Bad control message: %v", err)
		return
	}

	select {
	case c.Commands <- cmd:
	default:
		log.Println("Control queue full, dropping command")
	}
}

// Subscribe attaches the control topic subscription, if one is configured.
func (c *Control) Subscribe() {
	topic := c.config.Mqtt.Topics.Control
	if topic == "" {
		return
	}
	if token := c.client.Subscribe(topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}
