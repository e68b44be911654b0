package transcribe

import (
	"context"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/narrate-flow/internal/config"
	"github.com/nguyentantai21042004/narrate-flow/internal/logger"
)

type stubExecutor struct {
	lastName string
	lastArgs []string
	output   string
}

func (s *stubExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	s.lastName = name
	s.lastArgs = args
	return s.output, nil
}

func (s *stubExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return s.Execute(ctx, name, args...)
}

func TestNormalizeModelSize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tiny", "tiny"},
		{"base", "base"},
		{"large", "large"},
		{"huge", "base"},
		{"", "base"},
	}
	for _, tt := range tests {
		if got := NormalizeModelSize(tt.in); got != tt.want {
			t.Errorf("NormalizeModelSize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranscribe(t *testing.T) {
	cfg := config.Default()
	exec := &stubExecutor{output: " First sentence. Second one? Third here! Tail without break"}
	tr := New(cfg, exec, logger.New("error"))

	got, err := tr.Transcribe(context.Background(), "audio.wav", "small")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	want := "First sentence.\nSecond one?\nThird here!\nTail without break"
	if got != want {
		t.Errorf("Transcribe() = %q, want %q", got, want)
	}

	if exec.lastName != cfg.Whisper.BinaryPath {
		t.Errorf("binary = %q, want %q", exec.lastName, cfg.Whisper.BinaryPath)
	}
	joined := strings.Join(exec.lastArgs, " ")
	if !strings.Contains(joined, "ggml-small.bin") {
		t.Errorf("args = %q, want small model path", joined)
	}
	if !strings.Contains(joined, "-nt") {
		t.Errorf("args = %q, want -nt flag", joined)
	}
}

func TestTranscribeUnknownModelFallsBack(t *testing.T) {
	cfg := config.Default()
	exec := &stubExecutor{output: "text"}
	tr := New(cfg, exec, logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), "audio.wav", "enormous"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if !strings.Contains(strings.Join(exec.lastArgs, " "), "ggml-base.bin") {
		t.Errorf("args = %q, want base model fallback", exec.lastArgs)
	}
}
