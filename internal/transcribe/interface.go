package transcribe

import "context"

// Transcriber converts an audio file to plain text in one stateless batch
// call: audio path and model size in, text out.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, modelSize string) (string, error)
}
