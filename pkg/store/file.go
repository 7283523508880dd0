package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
)

// FileStore writes one file per slot under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) Path(slot message.SaveSlot) string {
	return filepath.Join(s.Dir, slot.FileName())
}

// Save replaces the slot file atomically.
func (s *FileStore) Save(_ context.Context, slot message.SaveSlot, m *chess.Match) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}

	f, err := os.CreateTemp(s.Dir, "."+slot.FileName()+"-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	defer os.Remove(f.Name())

	if err = m.Save(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	if err = os.Rename(f.Name(), s.Path(slot)); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, slot message.SaveSlot, m *chess.Match) error {
	f, err := os.Open(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", slot, ErrSlotNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", slot, err)
	}
	defer f.Close()

	return m.Load(f)
}
