package processor

import (
	"errors"

	"github.com/nguyentantai21042004/narrate-flow/internal/config"
	"github.com/nguyentantai21042004/narrate-flow/internal/logger"
	"github.com/nguyentantai21042004/narrate-flow/internal/raster"
	"github.com/nguyentantai21042004/narrate-flow/internal/synth"
	"github.com/nguyentantai21042004/narrate-flow/pkg/executor"
)

// ErrInputNotFound is returned when the transcript file does not exist.
// It is a fatal setup error; callers map it to a non-zero exit.
var ErrInputNotFound = errors.New("input file does not exist")

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	synth    synth.Synthesizer
	raster   raster.Rasterizer
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, syn synth.Synthesizer, ras raster.Rasterizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		synth:    syn,
		raster:   ras,
		logger:   log,
	}
}
