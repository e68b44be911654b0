package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/narrate-flow/internal/segment"
)

// Run orchestrates one pipeline run. A failure in any single chunk is logged
// and skipped; the run itself only fails on setup errors. Concatenation
// failure is surfaced as a warning and the per-chunk clips stay on disk.
func (p *implProcessor) Run(ctx context.Context, inputPath, suffix string) error {
	startTime := time.Now()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return fmt.Errorf("read input: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting narration pipeline: %s", inputPath)
	p.logger.Info(ctx, "========================================")

	paragraphs := segment.ExtractParagraphs(string(data))
	cards := p.processParagraphs(ctx, paragraphs)

	if len(cards) == 0 {
		p.logger.Warn(ctx, "No review cards were created. Check your input file and speaker configuration.")
		return nil
	}

	rendered, err := p.assemble(ctx, cards, suffix)
	if err != nil {
		p.logger.Warn(ctx, "Failed to combine clips, per-chunk videos are kept: %v", err)
	}

	// Only the rendered chunks are cleaned; audio of chunks that failed to
	// render stays on disk for diagnosis.
	p.removeTempFiles(ctx, rendered)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing complete! Created %d video clips.", len(rendered))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// processParagraphs synthesizes and pads every chunk of every retained
// paragraph, in order. The chunk index advances on failure too, keeping
// generated file names unique and traceable.
func (p *implProcessor) processParagraphs(ctx context.Context, paragraphs []segment.Paragraph) []ReviewCard {
	var cards []ReviewCard
	idx := 0

	for _, para := range paragraphs {
		if para.Speaker != p.cfg.Speaker {
			p.logger.Debug(ctx, "Skipping speaker %q", para.Speaker)
			continue
		}
		if len(para.Content) < p.cfg.Segment.MinLength {
			p.logger.Debug(ctx, "Skipping short paragraph (%d chars)", len(para.Content))
			continue
		}

		for _, chunk := range segment.SplitChunks(para.Content, p.cfg.Segment.MinLength) {
			p.logger.Info(ctx, "Processing chunk %d: %.50s...", idx, chunk)

			card, err := p.processChunk(ctx, idx, chunk)
			if err != nil {
				// Intermediates of the failed chunk are left for inspection
				p.logger.Error(ctx, "Chunk %d failed, skipping: %v", idx, err)
			} else {
				cards = append(cards, card)
			}
			idx++
		}
	}

	return cards
}

// processChunk runs synthesize -> pad for a single chunk and returns its
// review card.
func (p *implProcessor) processChunk(ctx context.Context, idx int, text string) (ReviewCard, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return ReviewCard{}, fmt.Errorf("create temp dir: %w", err)
	}

	audio, err := p.synth.Synthesize(ctx, text)
	if err != nil {
		return ReviewCard{}, fmt.Errorf("synthesize: %w", err)
	}

	tempPath := filepath.Join(p.cfg.Paths.Temp, p.cfg.Files.TempAudio)
	if err := os.WriteFile(tempPath, audio, 0644); err != nil {
		return ReviewCard{}, fmt.Errorf("write synthesized audio: %w", err)
	}

	audioName := fmt.Sprintf(p.cfg.Files.AudioTemplate, idx)
	if err := p.padWithSilence(ctx, audioName, p.cfg.TTS.Speed); err != nil {
		return ReviewCard{}, fmt.Errorf("pad with silence: %w", err)
	}

	return ReviewCard{AudioPath: audioName, Text: strings.TrimSpace(text)}, nil
}
