package player

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Player struct {
		Definition string  `yaml:"definition"`
		FrameRate  float64 `yaml:"frameRate"`
		Assets     string  `yaml:"assets"`
		HTTP       string  `yaml:"http"`
	} `yaml:"player"`
}
