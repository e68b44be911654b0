package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

var modelSizes = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

// sentence-per-line formatting of the raw transcription
var sentenceBreaks = strings.NewReplacer(
	". ", ".\n",
	"? ", "?\n",
	"! ", "!\n",
)

// NormalizeModelSize returns the model size if it is a known one, otherwise
// "base".
func NormalizeModelSize(size string) string {
	if modelSizes[size] {
		return size
	}
	return "base"
}

// Transcribe runs the whisper binary over the audio file and returns the
// transcription, one sentence per line, ready to be speaker-tagged and fed
// to the narration pipeline.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, modelSize string) (string, error) {
	size := NormalizeModelSize(modelSize)
	if size != modelSize {
		t.logger.Warn(ctx, "Unknown model size %q, using %q", modelSize, size)
	}

	modelPath := filepath.Join(t.cfg.Whisper.ModelDir, fmt.Sprintf("ggml-%s.bin", size))
	t.logger.Info(ctx, "Transcribing %s with model %s", audioPath, modelPath)

	// -nt drops timestamps so stdout is the plain transcription
	out, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath,
		"-m", modelPath,
		"-f", audioPath,
		"-l", t.cfg.Whisper.Language,
		"-nt",
	)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return sentenceBreaks.Replace(strings.TrimSpace(out)), nil
}
