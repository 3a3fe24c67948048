package loader

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
)

// ErrSnapshotParse is returned when a snapshot file cannot be decoded.
var ErrSnapshotParse = errors.New("loader: invalid snapshot file")

// IsSnapshotParseErr returns true if err is or wraps ErrSnapshotParse.
func IsSnapshotParseErr(err error) bool {
	return errors.Is(err, ErrSnapshotParse)
}

// ParseSnapshot decodes a YAML or JSON snapshot document.
// The document shape mirrors spesengine.Snapshot's JSON tags; YAML is
// accepted via JSON-compatible conversion, so both formats share one schema.
func ParseSnapshot(data []byte) (*spesengine.Snapshot, error) {
	var snap spesengine.Snapshot
	if err := yaml.UnmarshalStrict(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotParse, err)
	}
	return &snap, nil
}

// LoadFile reads and decodes a snapshot file.
func LoadFile(path string) (*spesengine.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return ParseSnapshot(data)
}
