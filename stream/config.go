package stream

// Config holds the streaming settings decoded from the yaml config.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Capture string `yaml:"capture"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Video struct {
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"video"`
}
