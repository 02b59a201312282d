package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"
)

func compose(seed int64) *scene.Scene {
	c := scene.NewComposer(scene.DefaultParams(), palette.NewRegistry(palette.Builtin()...), zerolog.Nop())
	return c.Compose(400, random.New(seed))
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sc := compose(42)
	id, err := st.Save(sc, scene.DefaultParams())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if id == "" {
		t.Error("expected non-empty id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.GridSize != sc.GridSize {
		t.Errorf("expected grid %d, got %d", sc.GridSize, meta.GridSize)
	}
	if meta.Circles+meta.Squares != len(sc.Cells) {
		t.Errorf("shape counts %d+%d do not sum to %d", meta.Circles, meta.Squares, len(sc.Cells))
	}
	if meta.Params != scene.DefaultParams() {
		t.Errorf("params not preserved: %+v", meta.Params)
	}

	loaded, err := st.LoadScene(id)
	if err != nil {
		t.Fatalf("load scene failed: %v", err)
	}
	if len(loaded.Cells) != len(sc.Cells) {
		t.Fatalf("expected %d cells, got %d", len(sc.Cells), len(loaded.Cells))
	}
	for i := range sc.Cells {
		if loaded.Cells[i] != sc.Cells[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, loaded.Cells[i], sc.Cells[i])
		}
	}
	if loaded.Background != sc.Background {
		t.Errorf("background differs")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 scenes, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for seed := int64(1); seed <= 3; seed++ {
		if _, err := st.Save(compose(seed), scene.DefaultParams()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 scenes, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.After(runs[i-1].Timestamp) {
			t.Error("list not sorted newest first")
		}
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := st.Save(compose(1), scene.DefaultParams())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "scene.json"} {
		if _, err := os.Stat(filepath.Join(tmpDir, id, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())
	for _, id := range []string{"missing", "", "../etc"} {
		if _, err := st.Load(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}
