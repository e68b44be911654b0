package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// renderClip rasterizes the caption frame and muxes it with the padded audio
// into a fixed-frame-rate clip at outputPath. The clip runs two frame
// intervals shorter than the audio to avoid a trailing-edge artifact at the
// join between consecutive clips.
func (p *implProcessor) renderClip(ctx context.Context, card ReviewCard, outputPath string) error {
	framePath := filepath.Join(p.cfg.Paths.Temp, "frame.png")
	if err := p.raster.Rasterize(card.Text, framePath); err != nil {
		return fmt.Errorf("rasterize caption: %w", err)
	}

	audioPath := filepath.Join(p.cfg.Paths.Temp, card.AudioPath)
	audioDuration, err := p.probeDuration(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("probe audio duration: %w", err)
	}

	fps := p.cfg.Video.FPS
	duration := audioDuration - 2.0/float64(fps)
	if duration <= 0 {
		duration = 1.0 / float64(fps)
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg",
		"-y",
		"-loop", "1",
		"-i", framePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(fps),
		"-t", fmt.Sprintf("%.3f", duration),
		outputPath,
	); err != nil {
		return fmt.Errorf("mux clip: %w", err)
	}

	if err := os.Remove(framePath); err != nil {
		p.logger.Warn(ctx, "Failed to remove frame file: %v", err)
	}
	return nil
}
