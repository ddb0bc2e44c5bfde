package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// LoadResumes reads every supported document in the directory and returns the
// cleaned texts. Files that cannot be read or yield no text are skipped with
// a warning; one bad resume never aborts the batch.
func LoadResumes(dir string, logger *zap.Logger) ([]types.Resume, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	resumes := make([]types.Resume, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !SupportedExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		text := CleanText(ExtractText(filepath.Join(dir, name)))
		if text == "" {
			logger.Warn("skipping resume with no extractable text", zap.String("file", name))
			continue
		}

		resumes = append(resumes, types.Resume{Name: name, Text: text})
	}

	return resumes, nil
}
