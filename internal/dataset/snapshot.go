package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Snapshot is the cached form of a cleaned table. SourceHash ties it to the
// exact bytes of the source file it was built from, so a changed dataset is
// re-parsed instead of served stale.
type Snapshot struct {
	SourceHash string    `json:"source_hash"`
	SavedAt    time.Time `json:"saved_at"`
	Records    Table     `json:"records"`
}

// SourceHash returns the hex SHA-256 of the file at path.
func SourceHash(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("hash dataset: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func ReadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func WriteSnapshot(path string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
