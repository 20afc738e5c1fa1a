package document

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/glyph-painter/core"
)

const newFileMode fs.FileMode = 0644

// Load reads the document at path
// A missing file is a new document: a blank defW x defH grid with created set
// Malformed files return an error wrapping ErrFormat and no grid
func Load(path string, defW, defH int) (g *core.Grid, created bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Document: %s does not exist, it will be created", path)
		return core.NewGrid(defW, defH), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", path, err)
	}

	g, err = Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", path, err)
	}
	log.Printf("Document: loaded %s (%dx%d)", path, g.Width(), g.Height())
	return g, false, nil
}

// Save overwrites path with the visible window of g
// Data goes to a temp file next to the target first so a failed write
// never truncates the previous document. Symlinks are followed and an
// existing file keeps its permissions
func Save(path string, g *core.Grid) error {
	var buf bytes.Buffer
	buf.Grow(EncodedSize(g.Width(), g.Height()))
	if err := Encode(&buf, g); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	target, mode, err := saveTarget(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}

	log.Printf("Document: saved %s (%dx%d)", path, g.Width(), g.Height())
	return nil
}

// saveTarget resolves symlinks in path and returns the mode the saved file gets
// A new document is created 0644
func saveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, newFileMode, nil
	}
	if err != nil {
		return "", 0, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}
