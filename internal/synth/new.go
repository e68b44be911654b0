package synth

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/narrate-flow/internal/logger"
)

type implSynthesizer struct {
	client *openai.Client
	model  string
	voices []string
	picker VoicePicker
	logger logger.Logger
}

// New creates a Synthesizer backed by the OpenAI speech API.
func New(apiKey, model string, voices []string, picker VoicePicker, log logger.Logger) Synthesizer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &implSynthesizer{
		client: &client,
		model:  model,
		voices: voices,
		picker: picker,
		logger: log,
	}
}
