package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the optional seed.yaml used
// to pre-provision a kiosk with playlists on first run.
type Loader struct {
	filePath string
}

// NewLoader creates a seed loader for filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	if len(f.Playlists) == 0 {
		return nil, fmt.Errorf("seed file %s defines no playlists", l.filePath)
	}

	return &f, nil
}
