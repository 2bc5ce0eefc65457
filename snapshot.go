package okm

import (
	"fmt"

	"github.com/hupe1980/okm/internal/fs"
)

// WriteFile stores the raw bytes of the container at path, ready for
// OpenView. The file is replaced atomically; a failed write leaves an
// existing file untouched. It fails with ErrNotPlainData when entries hold
// pointers.
func (t *table[K, V]) WriteFile(path string) error {
	return t.writeFile(fs.Default, path)
}

func (t *table[K, V]) writeFile(fsys fs.FileSystem, path string) error {
	raw, err := t.Bytes()
	if err != nil {
		return err
	}
	if err := fs.WriteAtomic(fsys, path, raw, 0o644); err != nil {
		return fmt.Errorf("okm: write file: %w", err)
	}
	return nil
}
