package file

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/void"
)

// Path locates the file holding the count.
type Path string

// Store keeps the count as decimal text in a single file.
type Store struct {
	path string
}

func NewStore(path Path) (*Store, error) {
	if path == "" {
		return nil, errors.New("void file path is empty")
	}

	absolute, err := filepath.Abs(string(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	return &Store{path: absolute}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the saved count. A missing file is not an error.
func (s *Store) Load(_ context.Context) (uint64, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}

		return 0, false, errors.Wrapf(err, "failed to read %s", s.path)
	}

	value, err := void.ParseValue(string(data))
	if err != nil {
		return 0, false, errors.Wrapf(err, "failed to load %s", s.path)
	}

	return value, true, nil
}

// Save replaces the file content with value, creating missing parent
// directories. The new content is written beside the file and renamed into
// place so readers never see a partial count.
func (s *Store) Save(_ context.Context, value uint64) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to save %s", s.path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(void.FormatValue(value)); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmp.Name())
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to sync %s", tmp.Name())
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmp.Name())
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to save %s", s.path)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", s.path)
	}

	return nil
}
