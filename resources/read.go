package resources

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read the named resource. A resource that does not exist is returned as an
// empty string without error. Surrounding whitespace is removed so that
// resources edited by hand read the same as those written by Write()
func Read(name string) (string, error) {
	pth, err := JoinPath(name)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// Write the named resource as a single line. The content replaces the
// resource only once it has been completely written
func Write(name string, content string) error {
	pth, err := JoinPath(name)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(pth), filepath.Base(pth)+".*")
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	defer os.Remove(f.Name())

	err = write(f, content+"\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("resources: %s: %w", name, err)
	}

	err = os.Rename(f.Name(), pth)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	return nil
}

func write(w io.Writer, content string) error {
	n, err := io.WriteString(w, content)
	if err != nil {
		return err
	}
	if n != len(content) {
		return io.ErrShortWrite
	}
	return nil
}
