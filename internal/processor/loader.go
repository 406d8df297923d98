package processor

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
)

var (
	errIsDir       = errors.New("is a directory")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// Load reads the whole file at path as UTF-8 text. Any failure to open or
// read it is returned as a *FileNotFoundError. Content that is not valid
// UTF-8 is a plain error.
func Load(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &FileNotFoundError{Path: path, Err: errIsDir}
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("failed to decode %s as UTF-8: %w", path, errInvalidUTF8)
	}

	return string(content), nil
}
