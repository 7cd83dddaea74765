// Package batch runs one OCR pass over a directory of images: enumerate,
// resolve timestamps, sort chronologically, then process each image in
// order, appending a labeled text block per image to a single output file.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/ironsheep/chronotext/internal/timestamp"
)

// allowedExtensions is the case-insensitive allow-list of file extensions
// considered for processing. Everything else in the input directory,
// subdirectories included, is silently ignored.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".tiff": {},
	".bmp":  {},
}

// timeFormat is the timestamp layout used in output block headers.
const timeFormat = "2006-01-02 15:04:05"

// ImageEntry is one candidate file with its resolved creation instant.
// Timestamp and Source are populated together when the entry is built and
// never change afterwards.
type ImageEntry struct {
	Path      string
	Timestamp time.Time
	Source    timestamp.Source
}

// Recognizer extracts text from a decoded image.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// Orchestrator runs a batch over one input directory.
type Orchestrator struct {
	resolver *timestamp.Resolver
	ocr      Recognizer
	log      *zap.SugaredLogger
}

// New creates an Orchestrator using the given OCR collaborator and logger.
func New(ocr Recognizer, log *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		resolver: &timestamp.Resolver{},
		ocr:      ocr,
		log:      log,
	}
}

// ListImages enumerates the files directly inside dir (non-recursive) that
// match the extension allow-list and returns them with resolved
// timestamps, sorted ascending by timestamp.
//
// The sort is stable: entries with equal timestamps keep the directory
// listing's name-sorted order, so repeated runs over the same listing
// produce the same processing order. A file that cannot be resolved
// (vanished between listing and resolution) is logged and skipped; only a
// failure to read the directory itself is returned as an error.
func (o *Orchestrator) ListImages(dir string) ([]ImageEntry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	entries := make([]ImageEntry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if _, ok := allowedExtensions[ext]; !ok {
			continue
		}

		path := filepath.Join(dir, de.Name())
		ts, src, err := o.resolver.Resolve(path)
		if err != nil {
			o.log.Errorf("Error processing %s: %v", de.Name(), err)
			continue
		}
		entries = append(entries, ImageEntry{Path: path, Timestamp: ts, Source: src})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

// Run processes every image in inputDir in chronological order, appending
// one labeled text block per image to outputPath.
//
// The output file and its parent directories are created up front if
// absent; an existing file is never truncated, so repeated runs append
// after earlier output. A failure on a single entry (decode, OCR, or the
// append itself) is logged and the batch continues with the next entry.
// Only an unpreparable output location or an unreadable input directory
// abort the run.
func (o *Orchestrator) Run(inputDir, outputPath string) error {
	if err := ensureOutputFile(outputPath); err != nil {
		return err
	}

	entries, err := o.ListImages(inputDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		o.log.Infof("No supported image files found in %s", inputDir)
		return nil
	}

	for _, entry := range entries {
		name := filepath.Base(entry.Path)

		block, err := o.process(entry)
		if err != nil {
			o.log.Errorf("Error processing %s: %v", name, err)
			continue
		}
		if err := appendBlock(outputPath, block); err != nil {
			o.log.Errorf("Error processing %s: %v", name, err)
			continue
		}

		o.log.Infof("Processed: %s (using %s timestamp)", name, entry.Source.Label())
	}
	return nil
}

// process decodes one entry and recognizes its text, returning the
// formatted output block. The decoded image is scoped to this call.
func (o *Orchestrator) process(entry ImageEntry) (string, error) {
	img, err := imaging.Open(entry.Path)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	text, err := o.ocr.Recognize(img)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("\n--- Text from %s (%s time: %s) ---\n%s\n",
		filepath.Base(entry.Path), entry.Source.Label(),
		entry.Timestamp.Format(timeFormat), text), nil
}

// ensureOutputFile creates outputPath's parent directories and the file
// itself if they do not exist. An existing file is left untouched.
func ensureOutputFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return f.Close()
}

// appendBlock appends one block to the output file. The file is opened
// and closed per entry; there is no concurrent writer to guard against.
func appendBlock(path, block string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("failed to append output: %w", err)
	}
	return f.Close()
}
