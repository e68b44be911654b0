package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config fills defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "speed below atempo range",
			config: Config{
				TTS: TTSConfig{Speed: 0.25},
			},
			wantErr: true,
		},
		{
			name: "speed above atempo range",
			config: Config{
				TTS: TTSConfig{Speed: 3.0},
			},
			wantErr: true,
		},
		{
			name: "negative min length",
			config: Config{
				Segment: SegmentConfig{MinLength: -1},
			},
			wantErr: true,
		},
		{
			name: "negative fps",
			config: Config{
				Video: VideoConfig{FPS: -30},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Speaker != "[Me]" {
		t.Errorf("Speaker = %v, want %v", cfg.Speaker, "[Me]")
	}
	if cfg.Segment.MinLength != 30 {
		t.Errorf("MinLength = %v, want %v", cfg.Segment.MinLength, 30)
	}
	if cfg.Video.Width != 640 || cfg.Video.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", cfg.Video.Width, cfg.Video.Height)
	}
	if cfg.TTS.Speed != 1.0 {
		t.Errorf("Speed = %v, want 1.0", cfg.TTS.Speed)
	}
	if len(cfg.TTS.Voices) != 6 {
		t.Errorf("Voices = %v, want 6 default voices", cfg.TTS.Voices)
	}
	if cfg.Files.Final != "ALL.mp4" {
		t.Errorf("Final = %v, want ALL.mp4", cfg.Files.Final)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
speaker: "[Narrator]"

video:
  width: 1280
  height: 720
  fps: 24
  font_size: 48
  wrap_width: 50

tts:
  model: "tts-1"
  speed: 1.25
  voices:
    - alloy
    - nova

segment:
  min_length: 45

paths:
  output: "clips"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Speaker != "[Narrator]" {
		t.Errorf("Speaker = %v, want %v", cfg.Speaker, "[Narrator]")
	}
	if cfg.Video.Width != 1280 {
		t.Errorf("Width = %v, want %v", cfg.Video.Width, 1280)
	}
	if cfg.TTS.Speed != 1.25 {
		t.Errorf("Speed = %v, want %v", cfg.TTS.Speed, 1.25)
	}
	if len(cfg.TTS.Voices) != 2 {
		t.Errorf("Voices = %v, want 2 entries", cfg.TTS.Voices)
	}
	if cfg.Paths.Output != "clips" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "clips")
	}

	// Unset fields still get defaults
	if cfg.Files.Manifest != "output_files.txt" {
		t.Errorf("Manifest = %v, want %v", cfg.Files.Manifest, "output_files.txt")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
