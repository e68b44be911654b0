package processor

import "context"

// Processor drives one transcript through the full narration pipeline:
// parse, per-chunk synthesis and padding, clip rendering, concatenation,
// temp-file teardown.
type Processor interface {
	Run(ctx context.Context, inputPath, suffix string) error
}

// ReviewCard pairs a post-processed audio artifact with the text it
// narrates, queued for rendering. AudioPath is relative to the temp dir.
type ReviewCard struct {
	AudioPath string
	Text      string
}
