package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/san-kum/gridsketch/internal/scene"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Writer encodes a scene. size is the pixel side for raster formats.
type Writer func(w io.Writer, sc *scene.Scene, size int) error

type Registry struct {
	formats map[string]Writer
}

func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]Writer)}
	r.formats["png"] = WritePNG
	r.formats["svg"] = WriteSVG
	r.formats["gif"] = WriteGIF
	return r
}

func (r *Registry) Get(ext string) (Writer, error) {
	w, ok := r.formats[normalize(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, ext, r.Formats())
	}
	return w, nil
}

func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFile picks the encoder from the path extension and writes the scene,
// creating parent directories as needed.
func (r *Registry) WriteFile(path string, sc *scene.Scene, size int) error {
	w, err := r.Get(filepath.Ext(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w(f, sc, size); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
