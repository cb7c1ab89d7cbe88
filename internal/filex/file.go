// Package filex holds small file helpers used by the CLI for entry
// attachments, which travel inline as base64 data URLs.
package filex

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const defaultMimeType = "application/octet-stream"

// EnsureSubDir creates (if needed) a subdirectory of the current working
// directory and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// EncodeDataURL reads the file at path and returns its base name, MIME type
// (guessed from the extension) and contents as a base64 data URL.
func EncodeDataURL(path string) (name, mimeType, dataURL string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	mimeType = mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	dataURL = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	return filepath.Base(path), mimeType, dataURL, nil
}

// DecodeDataURL parses a "data:<mime>;base64,<payload>" URL and returns the
// MIME type and decoded bytes.
func DecodeDataURL(dataURL string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: missing payload")
	}

	mimeType, encoding, hasEncoding := strings.Cut(meta, ";")
	if !hasEncoding || encoding != "base64" {
		return "", nil, fmt.Errorf("unsupported data URL encoding")
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URL payload: %w", err)
	}
	return mimeType, data, nil
}
