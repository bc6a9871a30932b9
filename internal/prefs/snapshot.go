package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jask/boule/internal/game"
	"github.com/jask/boule/internal/service"
)

const snapshotFile = "snapshot.json"

// DefaultPath is snapshot.json under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "boule", snapshotFile), nil
}

// FileStore keeps the snapshot as a JSON file, replaced atomically on save.
type FileStore struct {
	Path string
}

func (s FileStore) Save(_ context.Context, snap game.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := game.EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

func (s FileStore) Load(_ context.Context) (game.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.Snapshot{}, service.ErrNoSnapshot
		}
		return game.Snapshot{}, err
	}
	return game.DecodeSnapshot(data)
}
