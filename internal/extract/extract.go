// Package extract turns uploaded email files into plain text for the
// triage pipeline. Supported formats: .txt (UTF-8 with a Latin-1
// fallback) and .pdf (page-by-page text extraction).
package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedFormat indicates the uploaded file extension is neither
// .txt nor .pdf. Surfaced at the HTTP boundary as a 400.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FromFile reads an uploaded file and returns its plain text, keyed on
// the filename extension.
func FromFile(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return DecodeText(data), nil
	case ".pdf":
		return PDFText(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

// Format returns the metric label for a filename, or "" when the
// extension is unsupported.
func Format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "txt"
	case ".pdf":
		return "pdf"
	default:
		return ""
	}
}

// DecodeText decodes raw bytes UTF-8-first with a Latin-1 fallback.
// Email exports from legacy Windows clients regularly arrive in
// ISO-8859-1; every byte is a valid Latin-1 code point, so the fallback
// cannot fail.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Unreachable for ISO-8859-1, kept for the decoder contract.
		return string(data)
	}
	return string(decoded)
}
