package metrics

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/gridsketch/internal/scene"
)

func sample() *scene.Scene {
	red := color.NRGBA{R: 255, A: 180}
	blue := color.NRGBA{B: 255, A: 180}
	return &scene.Scene{
		GridSize:   2,
		CellSize:   10,
		Background: scene.White,
		Palette:    "test",
		Cells: []scene.Cell{
			{Size: 5, Shape: scene.Circle, Color: red},
			{Size: 10, Shape: scene.Circle, Color: red},
			{Size: 15, Shape: scene.Circle, Color: blue},
			{Size: 20, Shape: scene.Square, Color: red},
		},
	}
}

func TestCompute(t *testing.T) {
	st := Compute(sample())

	if st.Cells != 4 || st.Circles != 3 || st.Squares != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	if st.CircleFraction != 0.75 {
		t.Errorf("expected circle fraction 0.75, got %v", st.CircleFraction)
	}
	if st.MinSize != 0.5 || st.MaxSize != 2 {
		t.Errorf("expected sizes [0.5, 2], got [%v, %v]", st.MinSize, st.MaxSize)
	}
	if math.Abs(st.MeanSize-1.25) > 1e-9 {
		t.Errorf("expected mean 1.25, got %v", st.MeanSize)
	}
	if st.WhiteBackgrounds != 1 || st.Palettes["test"] != 1 {
		t.Errorf("unexpected scene tallies: %+v", st)
	}
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(&scene.Scene{})
	if st.MinSize != 0 || st.MaxSize != 0 || st.CircleFraction != 0 {
		t.Errorf("expected zero stats, got %+v", st)
	}
}

func TestAggregate(t *testing.T) {
	a := Compute(sample())
	b := Compute(&scene.Scene{
		CellSize:   1,
		Background: scene.Black,
		Palette:    "other",
		Cells:      []scene.Cell{{Size: 1, Shape: scene.Square}},
	})

	agg := Aggregate([]Stats{a, b, {}})
	if agg.Scenes != 2 || agg.Cells != 5 {
		t.Errorf("expected 2 scenes, 5 cells, got %+v", agg)
	}
	if agg.CircleFraction != 0.6 {
		t.Errorf("expected circle fraction 0.6, got %v", agg.CircleFraction)
	}
	if math.Abs(agg.MeanSize-(1.25*4+1)/5) > 1e-9 {
		t.Errorf("unexpected mean %v", agg.MeanSize)
	}
	if agg.WhiteBackgrounds != 1 || len(agg.Palettes) != 2 {
		t.Errorf("unexpected tallies: %+v", agg)
	}
}

func TestSizeHistogram(t *testing.T) {
	hist := SizeHistogram([]*scene.Scene{sample()}, 0.5, 2, 3)

	want := []float64{0.25, 0.25, 0.5}
	for i := range want {
		if math.Abs(hist[i]-want[i]) > 1e-9 {
			t.Errorf("bin %d = %v, want %v", i, hist[i], want[i])
		}
	}

	if h := SizeHistogram(nil, 1, 0, 4); len(h) != 4 || h[0] != 0 {
		t.Errorf("expected empty histogram for inverted range, got %v", h)
	}
}

func TestColorUsage(t *testing.T) {
	usage := ColorUsage(sample())
	if usage["#ff0000"] != 3 || usage["#0000ff"] != 1 {
		t.Errorf("unexpected usage: %v", usage)
	}
}
