package main

import (
	"flag"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/vanim/anim"
	"github.com/matt-g-everett/vanim/api"
	"github.com/matt-g-everett/vanim/item"
	"github.com/matt-g-everett/vanim/stream"
	"github.com/matt-g-everett/vanim/timeline"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
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

// buildScene authors the demo animation: a square is drawn, morphs into
// a circle, and a row of squares writes itself in with a stagger.
func buildScene() *timeline.Scene {
	blue, _ := colorful.Hex("#29abca")
	orange, _ := colorful.Hex("#e07a5f")

	s := timeline.NewScene()

	camera := timeline.Register(s, item.NewCameraFrame(16, 9))

	square := item.Square(2.0).WithStrokeColor(blue)
	sq := timeline.Register(s, square)
	check(timeline.Play(s, sq, anim.Create(square).WithDuration(1.0)))
	s.InsertTimeMark(1.0, timeline.Capture, "square")
	s.Sync()

	circle := item.Circle(1.2).WithStrokeColor(orange).WithFillColor(orange).WithFillOpacity(0.4)
	check(timeline.Play(s, sq, anim.Transform(square, circle).WithDuration(1.5)))
	s.Sync()

	row := item.NewGroup(
		item.Square(0.5),
		item.Square(0.5),
		item.Square(0.5),
	)
	rowID := timeline.Register(s, row)
	check(timeline.Play(s, rowID, anim.Lagged(0.5, row, func(p item.Path) *anim.AnimationSpan[item.Path] {
		return anim.Write(p)
	}).WithDuration(2.0)))

	check(timeline.Play(s, camera, anim.Transform(
		item.NewCameraFrame(16, 9),
		item.CameraFrame{Center: item.Vec2{X: 1}, Width: 8, Height: 4.5},
	).WithDuration(2.0).WithRateFunc(anim.EaseInOutCubic)))
	s.Sync()

	check(timeline.Play(s, sq, anim.UnCreate(circle).WithDuration(1.0)))
	s.InsertTimeMark(s.ElapsedSecs(), timeline.Capture, "final")
	s.Sync()

	return s
}

func check(err error) {
	if err != nil {
		panic(err)
	}
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

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("vanim").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	scene := buildScene()

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client, scene)

	go api.NewServer(scene).Run(":3000")

	a.run()
}
