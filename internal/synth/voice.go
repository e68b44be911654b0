package synth

import "math/rand"

type randomPicker struct{}

// NewRandomPicker returns a VoicePicker that selects uniformly at random.
// Voice selection has no affinity across chunks by design.
func NewRandomPicker() VoicePicker {
	return randomPicker{}
}

func (randomPicker) Pick(voices []string) string {
	if len(voices) == 0 {
		return ""
	}
	return voices[rand.Intn(len(voices))]
}
