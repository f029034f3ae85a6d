// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive command history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const name = ".tup_history"

// Load passes the history file to read. A missing history file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Save passes a truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(home, name))
}
