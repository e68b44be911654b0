package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/narrate-flow/internal/config"
	"github.com/nguyentantai21042004/narrate-flow/internal/logger"
	"github.com/nguyentantai21042004/narrate-flow/internal/transcribe"
	"github.com/nguyentantai21042004/narrate-flow/pkg/executor"
)

const outputFile = "transcription.txt"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()
	args := flag.Args()

	if len(args) < 1 {
		fmt.Println("Usage: transcribe [-config file] <audio_file> [model_size]")
		os.Exit(1)
	}

	audioPath := args[0]
	modelSize := "base"
	if len(args) > 1 {
		modelSize = args[1]
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	tr := transcribe.New(cfg, executor.New(), log)

	start := time.Now()
	text, err := tr.Transcribe(ctx, audioPath, modelSize)
	if err != nil {
		log.Error(ctx, "Transcription failed: %v", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		log.Error(ctx, "Failed to write %s: %v", outputFile, err)
		os.Exit(1)
	}

	log.Info(ctx, "Transcription written to %s", outputFile)
	log.Info(ctx, "Elapsed time: %.2f seconds", time.Since(start).Seconds())
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}
