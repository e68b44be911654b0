// Package segment turns a speaker-tagged transcript into ordered,
// length-bounded narration chunks.
package segment

import (
	"regexp"
	"strings"
)

var (
	// A speaker tag is an ASCII-alphabetic or bracketed token followed by a
	// colon, e.g. "[Me]:" or "Other:". Tags are recognized anywhere in the
	// text: a tag-like word inside content followed by a colon starts a new
	// paragraph. The grammar has no escaping, so that mis-split is a known
	// structural limitation of the transcript format, not something to fix
	// here.
	reSpeakerTag = regexp.MustCompile(`[a-zA-Z\[\]]+:`)

	// Sentence boundaries sit immediately after ., ! or ? followed by
	// whitespace.
	reSentenceEnd = regexp.MustCompile(`[.!?]\s+`)
)

// Paragraph is one contiguous speaker-tagged block of the transcript.
type Paragraph struct {
	Speaker string
	Content string
}

// ExtractParagraphs scans the transcript for speaker tags and assigns each
// span of text up to the next tag (or end of input) to the preceding tag's
// speaker. Paragraphs come back in document order.
func ExtractParagraphs(text string) []Paragraph {
	locs := reSpeakerTag.FindAllStringIndex(text, -1)

	paragraphs := make([]Paragraph, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		speaker := strings.TrimSpace(text[loc[0] : loc[1]-1]) // drop the colon
		content := strings.TrimSpace(text[loc[1]:end])
		paragraphs = append(paragraphs, Paragraph{Speaker: speaker, Content: content})
	}

	return paragraphs
}

// SplitChunks splits content at sentence boundaries and greedily packs
// consecutive sentences into chunks. A chunk is flushed once its accumulated
// raw sentence length exceeds minLength; a non-empty remainder is flushed as
// a final, possibly short, chunk. Sentences are never split, only grouped.
func SplitChunks(content string, minLength int) []string {
	sentences := splitSentences(content)

	var chunks []string
	var acc strings.Builder
	accLen := 0

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		acc.WriteString(sentence)
		acc.WriteString(" ")
		accLen += len(sentence)
		if accLen > minLength {
			chunks = append(chunks, strings.TrimSpace(acc.String()))
			acc.Reset()
			accLen = 0
		}
	}
	if acc.Len() > 0 {
		if rest := strings.TrimSpace(acc.String()); rest != "" {
			chunks = append(chunks, rest)
		}
	}

	return chunks
}

// splitSentences cuts the text after each terminal punctuation mark that is
// followed by whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	locs := reSentenceEnd.FindAllStringIndex(text, -1)

	sentences := make([]string, 0, len(locs)+1)
	start := 0
	for _, loc := range locs {
		// loc[0] is the punctuation mark; the sentence ends right after it
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	return sentences
}
