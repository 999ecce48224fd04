package main

import (
	"flag"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/vectorstudio/animtx/api"
	"github.com/vectorstudio/animtx/engine"
	"github.com/vectorstudio/animtx/player"
)

type app struct {
	Config   player.Config
	Client   mqtt.Client
	Streamer *player.Streamer
	Api      *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

// loadSource reads the exported definition and wraps it in a state source: a
// sequence gets the scene controller, a bare timeline plays directly.
func (a *app) loadSource() (player.StateSource, []byte) {
	data, err := os.ReadFile(a.Config.Player.Definition)
	if err != nil {
		panic(err)
	}

	if seq, err := engine.DecodeSequence(data); err == nil && len(seq.Scenes) > 0 {
		controller, err := player.NewController(seq)
		if err != nil {
			panic(err)
		}
		return controller, data
	}

	timeline, err := engine.DecodeTimeline(data)
	if err != nil {
		panic(err)
	}
	return player.NewTimelineSource(timeline), data
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	source, definition := a.loadSource()

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Streamer = player.NewStreamer(a.Config, client, source)
	a.Api = api.NewApi(a.Config.Player.Assets, definition)
	a.Streamer.OnFrame = a.Api.Broadcast

	go a.Api.Serve(a.Config.Player.HTTP)

	a.run()
}
