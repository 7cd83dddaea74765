package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/chronotext/internal/batch"
	"github.com/ironsheep/chronotext/internal/config"
	"github.com/ironsheep/chronotext/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("chronotext %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  Tesseract:  %s\n", ocr.Version())
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg := config.Load()

	logger, err := buildLogger(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	orch := batch.New(ocr.NewEngine(cfg.OCR.Language), log)
	if err := orch.Run(cfg.App.InputDir, cfg.App.OutputFile); err != nil {
		log.Fatalf("Batch failed: %v", err)
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func printHelp() {
	fmt.Println("chronotext - batch OCR for a folder of images, in chronological order")
	fmt.Println()
	fmt.Println("Usage: chronotext [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  CHRONOTEXT_INPUT_DIR      Directory of images to process (default: images)")
	fmt.Println("  CHRONOTEXT_OUTPUT_FILE    Aggregate text file to append to (default: clio-out/extracted_text.txt)")
	fmt.Println("  CHRONOTEXT_OCR_LANGUAGE   Tesseract language code (default: eng)")
	fmt.Println("  CHRONOTEXT_LOG_LEVEL      Log level: debug, info, warn, error (default: info)")
	fmt.Println()
	fmt.Println("Supported formats: PNG, JPEG, TIFF, BMP. Images are ordered by EXIF")
	fmt.Println("capture time when available, file modification time otherwise. One")
	fmt.Println("labeled text block is appended per image; existing output is never")
	fmt.Println("truncated.")
}
