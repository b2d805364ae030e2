package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
)

// Store файловое хранилище снапшотов: один JSON файл на слот.
// Запись атомарна: содержимое пишется во временный файл и переименовывается.
type Store struct {
	dir string
}

// NewStore создает файловое хранилище в указанном каталоге
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load читает содержимое слота
func (s *Store) Load(_ context.Context, slot string) ([]byte, error) {
	payload, err := os.ReadFile(s.slotPath(slot))
	if os.IsNotExist(err) {
		return nil, snapshot.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - slot %s: %v", ErrReadFile, slot, err)
	}
	return payload, nil
}

// Save полностью перезаписывает слот
func (s *Store) Save(_ context.Context, slot string, payload []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: Save - create dir %s: %v", ErrWriteFile, s.dir, err)
	}

	path := s.slotPath(slot)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("%w: Save - slot %s: %v", ErrWriteFile, slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: Save - rename slot %s: %v", ErrWriteFile, slot, err)
	}
	return nil
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}
