package blob

import (
	"io"
	"os"
	"path/filepath"

	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

const filePerm = 0o640

// Store holds uploaded blobs as plain files in a single directory,
// addressed by sanitized filename.
type Store struct {
	dir string
}

// New creates a blob store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// resolve maps a blob name to its on-disk path. Names that do not survive
// sanitization unchanged are rejected so a request can never address a
// file outside the storage directory.
func (s *Store) resolve(name string) (string, error) {
	if name == "" || SanitizeFilename(name) != name {
		return "", InvalidNameError{Name: name}
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes the reader's content under the given name, overwriting any
// existing blob with that name, and returns the number of bytes written.
func (s *Store) Save(name string, reader io.Reader) (int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to create blob file")
		return 0, err
	}

	written, err := io.Copy(dst, reader)
	if err != nil {
		_ = dst.Close()
		if removeErr := os.Remove(path); removeErr != nil {
			log.Error().Err(removeErr).Str("path", path).Msg("Failed to remove blob after write error")
		}
		log.Error().Err(err).Str("path", path).Msg("Failed to write blob")
		return 0, err
	}

	if err := dst.Close(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to close blob file")
		return 0, err
	}

	log.Debug().Str("name", name).Int64("size", written).Msg("Blob stored")
	return written, nil
}

// Path resolves a blob name to the path of an existing file.
func (s *Store) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", NotFoundError{Name: name}
	} else if err != nil {
		return "", err
	}

	return path, nil
}

// Exists checks whether a blob with the given name is stored.
func (s *Store) Exists(name string) bool {
	_, err := s.Path(name)
	return err == nil
}

// Size returns the byte length of a stored blob.
func (s *Store) Size(name string) (int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, NotFoundError{Name: name}
	}
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Delete removes a stored blob. A missing blob is not an error.
func (s *Store) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", path).Msg("Failed to remove blob")
		return err
	}
	return nil
}
