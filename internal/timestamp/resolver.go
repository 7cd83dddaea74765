// Package timestamp resolves the best-known creation instant for an image
// file: embedded EXIF capture time when present and parsable, filesystem
// modification time otherwise.
package timestamp

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTimeLayout is the fixed EXIF datetime format: colon-separated date,
// space, colon-separated time.
const exifTimeLayout = "2006:01:02 15:04:05"

// Source identifies where a resolved timestamp came from.
type Source int

const (
	// SourceMetadata means the timestamp was read from embedded capture
	// metadata.
	SourceMetadata Source = iota

	// SourceFilesystem means the timestamp is the file's last
	// modification time.
	SourceFilesystem
)

// Label returns the external name for the provenance tag, as used in
// output block headers and log lines.
func (s Source) Label() string {
	if s == SourceMetadata {
		return "EXIF"
	}
	return "mtime"
}

// dateTags is the tag search order: the capture-specific tag strictly
// before the generic one.
var dateTags = []exif.FieldName{exif.DateTimeOriginal, exif.DateTime}

// Resolver determines creation timestamps for image files.
type Resolver struct{}

// Resolve returns the best-known creation instant for the file at path,
// together with its provenance.
//
// Embedded EXIF capture time is preferred: DateTimeOriginal is checked
// first, then DateTime, and the first tag whose value parses against the
// EXIF datetime format wins. Every metadata failure variant (unreadable
// file, no EXIF block, missing tags, malformed value) degrades silently
// to the file's modification time. An error is returned only when that
// fallback itself fails because the file cannot be stat'd; for an
// existing, readable file Resolve always produces a result.
func (r *Resolver) Resolve(path string) (time.Time, Source, error) {
	if ts, ok := metadataTime(path); ok {
		return ts, SourceMetadata, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, SourceFilesystem, err
	}
	return info.ModTime(), SourceFilesystem, nil
}

// metadataTime extracts the capture time from the file's EXIF data.
// It reports false for every failure variant, so callers cannot
// distinguish a corrupt image from a missing tag and the fallback stays
// uniform.
func metadataTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, name := range dateTags {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		val, err := tag.StringVal()
		if err != nil {
			continue
		}
		// EXIF ASCII values are NUL-terminated; some writers pad with
		// spaces.
		val = strings.TrimRight(val, "\x00 ")

		// EXIF datetimes carry no zone; parse in the local zone so they
		// compare consistently with local mtimes.
		ts, err := time.ParseInLocation(exifTimeLayout, val, time.Local)
		if err != nil {
			continue
		}
		return ts, true
	}
	return time.Time{}, false
}
