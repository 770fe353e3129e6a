package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink persists annotation records as JSON files in a directory,
// one file per record ID. Re-flushing a record overwrites its file.
type FileSink struct {
	Dir string
}

// SaveAnnotation implements Sink.
func (fs FileSink) SaveAnnotation(rec AnnotationRecord) error {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return fmt.Errorf("annotation dir: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode annotation: %w", err)
	}
	path := filepath.Join(fs.Dir, rec.ID.String()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write annotation: %w", err)
	}
	return nil
}
