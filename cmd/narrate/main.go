package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/narrate-flow/internal/config"
	"github.com/nguyentantai21042004/narrate-flow/internal/logger"
	"github.com/nguyentantai21042004/narrate-flow/internal/processor"
	"github.com/nguyentantai21042004/narrate-flow/internal/raster"
	"github.com/nguyentantai21042004/narrate-flow/internal/synth"
	"github.com/nguyentantai21042004/narrate-flow/internal/watcher"
	"github.com/nguyentantai21042004/narrate-flow/pkg/executor"
)

const usage = "Usage: narrate [-config file] [-watch] <input_file> [suffix]"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", false, "monitor the configured input directory for new transcripts")
	flag.Parse()

	ctx := context.Background()
	args := flag.Args()

	if !*watch && len(args) < 1 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Error(ctx, "OPENAI_API_KEY environment variable not set")
		os.Exit(1)
	}

	exec := executor.New()
	syn := synth.New(apiKey, cfg.TTS.Model, cfg.TTS.Voices, synth.NewRandomPicker(), log)
	ras := raster.New(cfg.Video.Width, cfg.Video.Height, cfg.Video.FontSize, cfg.Video.WrapWidth, cfg.Video.FontPath)
	proc := processor.New(cfg, exec, syn, ras, log)

	if *watch {
		runWatch(ctx, cfg, proc, log)
		return
	}

	suffix := ""
	if len(args) > 1 {
		suffix = args[1]
	}

	if err := proc.Run(ctx, args[0], suffix); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}
}

// runWatch processes every transcript dropped into the input directory,
// deriving each run's suffix from the file name.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, path string) error {
		return proc.Run(ctx, path, deriveSuffix(path))
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Narration pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Narration pipeline stopped")
}

// loadConfig reads the YAML file when present; a missing file means
// defaults, since the CLI contract only requires the input transcript.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func deriveSuffix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_"
}
