package config

import "fmt"

type Config struct {
	Speaker string        `yaml:"speaker"`
	Video   VideoConfig   `yaml:"video"`
	TTS     TTSConfig     `yaml:"tts"`
	Segment SegmentConfig `yaml:"segment"`
	Paths   PathsConfig   `yaml:"paths"`
	Files   FilesConfig   `yaml:"files"`
	Whisper WhisperConfig `yaml:"whisper"`
	Logging LoggingConfig `yaml:"logging"`
}

type VideoConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	FPS       int    `yaml:"fps"`
	FontSize  int    `yaml:"font_size"`
	FontPath  string `yaml:"font_path"`
	WrapWidth int    `yaml:"wrap_width"`
}

type TTSConfig struct {
	Model  string   `yaml:"model"`
	Voices []string `yaml:"voices"`
	Speed  float64  `yaml:"speed"`
}

type SegmentConfig struct {
	MinLength int `yaml:"min_length"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type FilesConfig struct {
	TempAudio     string `yaml:"temp_audio"`
	Silence       string `yaml:"silence"`
	AudioTemplate string `yaml:"audio_template"`
	Manifest      string `yaml:"manifest"`
	Final         string `yaml:"final"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Language   string `yaml:"language"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks value ranges and fills defaults for unset fields.
func (c *Config) Validate() error {
	if c.Segment.MinLength < 0 {
		return fmt.Errorf("segment.min_length must not be negative")
	}
	if c.Video.FPS < 0 {
		return fmt.Errorf("video.fps must not be negative")
	}
	if c.TTS.Speed != 0 && (c.TTS.Speed < 0.5 || c.TTS.Speed > 2.0) {
		// ffmpeg's atempo filter accepts 0.5-2.0 in a single stage
		return fmt.Errorf("tts.speed must be between 0.5 and 2.0")
	}

	if c.Speaker == "" {
		c.Speaker = "[Me]"
	}
	if c.Video.Width == 0 {
		c.Video.Width = 640
	}
	if c.Video.Height == 0 {
		c.Video.Height = 480
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Video.FontSize == 0 {
		c.Video.FontSize = 32
	}
	if c.Video.WrapWidth == 0 {
		c.Video.WrapWidth = 40
	}
	if c.TTS.Model == "" {
		c.TTS.Model = "tts-1"
	}
	if len(c.TTS.Voices) == 0 {
		c.TTS.Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
	}
	if c.TTS.Speed == 0 {
		c.TTS.Speed = 1.0
	}
	if c.Segment.MinLength == 0 {
		c.Segment.MinLength = 30
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Files.TempAudio == "" {
		c.Files.TempAudio = "temp.mp3"
	}
	if c.Files.Silence == "" {
		c.Files.Silence = "silence.mp3"
	}
	if c.Files.AudioTemplate == "" {
		c.Files.AudioTemplate = "part_%d.mp3"
	}
	if c.Files.Manifest == "" {
		c.Files.Manifest = "output_files.txt"
	}
	if c.Files.Final == "" {
		c.Files.Final = "ALL.mp4"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
