package stream

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/vanim/timeline"
)

// Streamer plays a scene back in real time, publishing each evaluated
// frame as binary over MQTT. Capture time marks are published to their
// own topic as they are passed.
type Streamer struct {
	config Config
	client mqtt.Client
	scene  *timeline.Scene

	playSec  float64
	marks    []timeline.TimeMark
	nextMark int
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, scene *timeline.Scene) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.scene = scene
	s.marks = scene.TimeMarks()
	return s
}

// SendFrame evaluates the scene at the current playback time and sends
// the frame as binary over MQTT.
func (s *Streamer) SendFrame() {
	f := NewFrame(s.playSec, s.scene.EvaluateAt(s.playSec))
	b, err := f.MarshalBinary()
	if err != nil {
		log.Printf("marshal frame at %.3fs: %v", s.playSec, err)
		return
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()

	for s.nextMark < len(s.marks) && s.marks[s.nextMark].AtSec <= s.playSec {
		mark := s.marks[s.nextMark]
		s.nextMark++
		if mark.Kind != timeline.Capture {
			continue
		}
		token := s.client.Publish(s.config.Mqtt.Topics.Capture, 2, false, mark.Name)
		token.Wait()
	}
}

// Run streams the whole scene once at the configured frame rate.
func (s *Streamer) Run() {
	frameRate := s.config.Video.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	step := 1.0 / frameRate

	log.Printf("Streaming %.2fs at %.0f fps", s.scene.ElapsedSecs(), frameRate)
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) * step))
	defer publishTimer.Stop()
	for {
		<-publishTimer.C
		s.SendFrame()
		s.playSec += step
		if s.playSec > s.scene.ElapsedSecs() {
			log.Println("Stream complete")
			return
		}
	}
}
