package synth

import "context"

// Synthesizer converts one text chunk into encoded audio bytes.
// A synthesis error is returned to the caller rather than aborting anything
// beyond the current chunk.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoicePicker selects a voice from the configured set. Injected so tests can
// substitute a deterministic strategy.
type VoicePicker interface {
	Pick(voices []string) string
}
