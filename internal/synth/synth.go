package synth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/openai/openai-go"
)

// Synthesize sends one text chunk to the speech API and returns the encoded
// MP3 bytes. A fresh voice is picked per call, so the voice may change from
// clip to clip within one output.
func (s *implSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	voice := s.picker.Pick(s.voices)
	s.logger.Debug(ctx, "Synthesizing with voice %s: %.50s...", voice, text)

	res, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          strings.TrimSpace(text),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}

	return data, nil
}
