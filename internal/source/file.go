// Package source supplies the raw bytes of the knowledge document,
// either from the local filesystem or from S3-compatible storage, and
// exposes a cheap change fingerprint for the reload watcher.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docfaq/docfaq/internal/domain"
)

// fingerprintAbsent marks a source whose document does not exist yet.
// Absence is not an error: the watcher keeps polling and the engine
// simply has no knowledge until the document appears.
const fingerprintAbsent = "absent"

// FileSource reads the knowledge document from a local path.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the document's file name, used for extension dispatch
// and status reporting.
func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

// Fetch reads the document bytes.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed,
				fmt.Sprintf("source document %s does not exist", s.path), err)
		}
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed,
			fmt.Sprintf("failed to read source document %s", s.path), err)
	}
	return data, nil
}

// Fingerprint returns a value that changes whenever the document
// changes. A missing document fingerprints as a stable sentinel so the
// watcher reloads once when it first appears.
func (s *FileSource) Fingerprint(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fingerprintAbsent, nil
		}
		return "", fmt.Errorf("failed to stat source document: %w", err)
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}
