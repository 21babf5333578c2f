package tabular

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestName is the file name of the manifest inside an output directory.
const ManifestName = "manifest.json"

// Manifest records how a split was produced and what it contains.
type Manifest struct {
	RunID          string     `json:"run_id"`
	CreatedAt      time.Time  `json:"created_at"`
	Input          string     `json:"input"`
	Seed           uint64     `json:"seed"`
	TrainFrac      float64    `json:"train_frac"`
	ValFrac        float64    `json:"val_frac"`
	MultiReference bool       `json:"multi_reference"`
	Language       string     `json:"language,omitempty"`
	Files          []FileInfo `json:"files"`
}

// WriteManifest writes m as indented JSON into dir.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from dir.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Verify recomputes every file checksum and returns the names that differ.
func (m Manifest) Verify(dir string) ([]string, error) {
	var changed []string
	for _, f := range m.Files {
		sum, err := Checksum(filepath.Join(dir, f.Name))
		if err != nil {
			return nil, err
		}
		if sum != f.Checksum {
			changed = append(changed, f.Name)
		}
	}
	return changed, nil
}
