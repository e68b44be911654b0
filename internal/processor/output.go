package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// assemble renders a clip per review card into the output directory,
// appends each produced file name to the manifest, and concatenates the
// manifest into one combined video. It returns the cards whose clips were
// actually rendered: a render failure skips that card, and its padded audio
// must survive cleanup for diagnosis. A concatenation failure is returned
// but already-rendered clips stay on disk as the recoverable partial result.
func (p *implProcessor) assemble(ctx context.Context, cards []ReviewCard, suffix string) ([]ReviewCard, error) {
	outDir := p.cfg.Paths.Output
	if err := p.ensureOutputDir(ctx, outDir); err != nil {
		return nil, err
	}

	manifest, err := os.OpenFile(filepath.Join(outDir, p.cfg.Files.Manifest),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}

	rendered := make([]ReviewCard, 0, len(cards))
	for _, card := range cards {
		clipName := suffix + strings.TrimSuffix(card.AudioPath, filepath.Ext(card.AudioPath)) + ".mp4"

		if err := p.renderClip(ctx, card, filepath.Join(outDir, clipName)); err != nil {
			p.logger.Error(ctx, "Failed to render clip %s, skipping: %v", clipName, err)
			continue
		}

		if _, err := fmt.Fprintf(manifest, "file '%s'\n", clipName); err != nil {
			manifest.Close()
			return rendered, fmt.Errorf("append manifest entry: %w", err)
		}
		rendered = append(rendered, card)
		p.logger.Info(ctx, "Rendered clip: %s", clipName)
	}

	if err := manifest.Close(); err != nil {
		return rendered, fmt.Errorf("close manifest: %w", err)
	}

	// Manifest entries are bare file names, so ffmpeg runs in the output dir
	finalName := suffix + p.cfg.Files.Final
	if _, err := p.executor.ExecuteInDir(ctx, outDir, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", p.cfg.Files.Manifest,
		"-c", "copy",
		finalName,
	); err != nil {
		return rendered, fmt.Errorf("concatenate clips: %w", err)
	}

	p.logger.Info(ctx, "Combined video: %s", filepath.Join(outDir, finalName))
	return rendered, nil
}

// ensureOutputDir creates the output directory. A path that exists as
// something other than a directory is removed and recreated; prior output
// at that path is discarded, which is why the replacement is logged loudly.
func (p *implProcessor) ensureOutputDir(ctx context.Context, outDir string) error {
	if info, err := os.Stat(outDir); err == nil && !info.IsDir() {
		p.logger.Warn(ctx, "Output path %s exists and is not a directory, replacing it", outDir)
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("remove conflicting output path: %w", err)
		}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
