package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFiles renders the three documents into dir, creating it if needed,
// and returns the written paths.
func WriteFiles(dir string, r *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	docs := []struct {
		name   string
		render func(io.Writer) error
	}{
		{FileUpcoming, r.Upcoming},
		{FilePowerRankings, r.PowerRankings},
		{FileMatchupRankings, r.MatchupRankings},
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		var buf bytes.Buffer
		if err := doc.render(&buf); err != nil {
			return paths, fmt.Errorf("render %s: %w", doc.name, err)
		}
		path := filepath.Join(dir, doc.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", doc.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
