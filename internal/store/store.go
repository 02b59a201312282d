package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/gridsketch/internal/scene"
)

var ErrNotFound = errors.New("store: scene not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Seed       int64     `json:"seed"`
	GridSize   int       `json:"grid_size"`
	CanvasSize float64   `json:"canvas_size"`
	Palette    string    `json:"palette"`
	Background string    `json:"background"`
	Circles    int       `json:"circles"`
	Squares    int       `json:"squares"`
	// Params records the knobs the scene was composed with.
	Params scene.Params `json:"params"`
}

// Save writes the scene and its metadata under a fresh id.
func (s *Store) Save(sc *scene.Scene, params scene.Params) (string, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	background := "black"
	if sc.Background == scene.White {
		background = "white"
	}
	meta := Metadata{
		ID:         id,
		Timestamp:  time.Now(),
		Seed:       sc.Seed,
		GridSize:   sc.GridSize,
		CanvasSize: sc.CanvasSize,
		Palette:    sc.Palette,
		Background: background,
		Circles:    sc.Count(scene.Circle),
		Squares:    sc.Count(scene.Square),
		Params:     params,
	}

	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "scene.json"), sc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	var meta Metadata
	if err := s.readJSON(id, "metadata.json", &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadScene(id string) (*scene.Scene, error) {
	var sc scene.Scene
	if err := s.readJSON(id, "scene.json", &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// List returns every stored scene, newest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var out []Metadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) readJSON(id, name string, v any) error {
	if id == "" || filepath.Base(id) != id {
		return fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
