package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const concatListName = "concat_list.txt"

// padWithSilence appends a calibrated silent tail to the freshly synthesized
// clip and applies the tempo multiplier, producing audioName in the temp dir.
// Each step is one external invocation; the first non-zero exit aborts the
// chain and leaves intermediates in place for inspection.
func (p *implProcessor) padWithSilence(ctx context.Context, audioName string, speed float64) error {
	work := p.cfg.Paths.Temp

	duration, err := p.probeDuration(ctx, filepath.Join(work, p.cfg.Files.TempAudio))
	if err != nil {
		return fmt.Errorf("probe source duration: %w", err)
	}

	// 50% longer than the clip plus one second, truncated to whole seconds.
	// The generous tail guards against clipped playback at the join.
	silentSeconds := int(duration*1.5 + 1.0)

	if _, err := p.executor.ExecuteInDir(ctx, work, "ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "anullsrc=r=44100:cl=mono",
		"-t", strconv.Itoa(silentSeconds),
		p.cfg.Files.Silence,
	); err != nil {
		return fmt.Errorf("generate silence: %w", err)
	}

	if _, err := p.executor.ExecuteInDir(ctx, work, "ffmpeg",
		"-y",
		"-i", p.cfg.Files.TempAudio,
		"-filter:a", fmt.Sprintf("atempo=%g", speed),
		"-vn",
		audioName,
	); err != nil {
		return fmt.Errorf("adjust tempo: %w", err)
	}

	// Concat list entries are relative names, so ffmpeg runs in the temp dir
	list := fmt.Sprintf("file '%s'\nfile '%s'\n", audioName, p.cfg.Files.Silence)
	if err := os.WriteFile(filepath.Join(work, concatListName), []byte(list), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	combined := "combined_" + audioName
	if _, err := p.executor.ExecuteInDir(ctx, work, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", concatListName,
		"-c", "copy",
		combined,
	); err != nil {
		return fmt.Errorf("append silence: %w", err)
	}

	if err := os.Remove(filepath.Join(work, concatListName)); err != nil {
		p.logger.Warn(ctx, "Failed to remove concat list: %v", err)
	}
	if err := os.Rename(filepath.Join(work, combined), filepath.Join(work, audioName)); err != nil {
		return fmt.Errorf("replace audio with combined file: %w", err)
	}

	return nil
}

// probeDuration asks ffprobe for a media file's duration in seconds.
func (p *implProcessor) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	return duration, nil
}
