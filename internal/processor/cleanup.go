package processor

import (
	"context"
	"os"
	"path/filepath"
)

// removeTempFiles deletes the per-chunk audio files behind the given review
// cards plus the shared silence and pre-padding temp files. Callers pass
// only the cards that made it through rendering; intermediates of chunks
// that failed mid-pipeline stay on disk for diagnosis.
func (p *implProcessor) removeTempFiles(ctx context.Context, cards []ReviewCard) {
	for _, card := range cards {
		p.cleanupTempFile(ctx, filepath.Join(p.cfg.Paths.Temp, card.AudioPath))
	}
	p.cleanupTempFile(ctx, filepath.Join(p.cfg.Paths.Temp, p.cfg.Files.Silence))
	p.cleanupTempFile(ctx, filepath.Join(p.cfg.Paths.Temp, p.cfg.Files.TempAudio))
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		}
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
