// Package ocr provides Optical Character Recognition (OCR) functionality using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to extract
// text from decoded images. The batch processor hands it one image at a
// time; there is no region or layout analysis because the aggregate output
// file carries plain text only.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages can be specified
// using their Tesseract language codes:
//   - "eng" - English
//   - "deu" - German
//   - "fra" - French
//   - "spa" - Spanish
//   - "chi_sim" - Chinese (Simplified)
//   - See Tesseract documentation for full list
//
// # Resource Handling
//
// A gosseract client holds native Tesseract state. Engine creates and
// closes one client per Recognize call, so no native resources outlive the
// image being processed.
//
// # Error Handling
//
// Recognize returns errors for:
//   - Unsupported language codes
//   - Tesseract initialization failures
//   - Images Tesseract cannot ingest
//
// Errors are returned to the caller untranslated; the batch layer decides
// whether a failure aborts anything (it never aborts more than the one
// image).
package ocr
