package synth

import "testing"

func TestRandomPicker(t *testing.T) {
	voices := []string{"alloy", "echo", "fable"}
	picker := NewRandomPicker()

	valid := make(map[string]bool, len(voices))
	for _, v := range voices {
		valid[v] = true
	}

	for i := 0; i < 100; i++ {
		got := picker.Pick(voices)
		if !valid[got] {
			t.Fatalf("Pick() = %q, not in voice set %v", got, voices)
		}
	}
}

func TestRandomPickerSingleVoice(t *testing.T) {
	picker := NewRandomPicker()
	if got := picker.Pick([]string{"nova"}); got != "nova" {
		t.Errorf("Pick() = %q, want nova", got)
	}
}

func TestRandomPickerEmptySet(t *testing.T) {
	picker := NewRandomPicker()
	if got := picker.Pick(nil); got != "" {
		t.Errorf("Pick(nil) = %q, want empty string", got)
	}
}
