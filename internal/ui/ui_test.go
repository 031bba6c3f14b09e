package ui

import (
	"testing"

	"tilegen/internal/core"
	"tilegen/internal/worldgen"
)

type fakeTunable struct {
	ints   map[string]int
	floats map[string]float64
	refuse bool
}

func (f *fakeTunable) Name() string                               { return "fake" }
func (f *fakeTunable) Size() core.Size                            { return core.Size{W: 1, H: 1} }
func (f *fakeTunable) Parameters() core.ParameterSnapshot         { return core.ParameterSnapshot{} }
func (f *fakeTunable) ParameterControls() []core.ParameterControl { return nil }

func (f *fakeTunable) SetIntParameter(key string, value int) bool {
	if f.refuse {
		return false
	}
	f.ints[key] = value
	return true
}

func (f *fakeTunable) SetFloatParameter(key string, value float64) bool {
	if f.refuse {
		return false
	}
	f.floats[key] = value
	return true
}

func TestStepValueClamps(t *testing.T) {
	ctrl := core.ParameterControl{Key: "expansion", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true}
	if next, ok := stepValue(ctrl, 0.98, 1); !ok || next != 1 {
		t.Fatalf("got %v %v, want 1 true", next, ok)
	}
	if _, ok := stepValue(ctrl, 1, 1); ok {
		t.Fatal("step past max should be refused")
	}
	intCtrl := core.ParameterControl{Key: "map_chunks", Type: core.ParamTypeInt, Step: 2, Min: 3, HasMin: true}
	if next, ok := stepValue(intCtrl, 4, -1); !ok || next != 3 {
		t.Fatalf("got %v %v, want 3 true", next, ok)
	}
	if next, _ := stepValue(core.ParameterControl{Type: core.ParamTypeInt}, 5, 1); next != 6 {
		t.Fatalf("default int step gave %v", next)
	}
}

func TestApplyStepRoutesByType(t *testing.T) {
	f := &fakeTunable{ints: map[string]int{}, floats: map[string]float64{}}
	intCtrl := core.ParameterControl{Key: "chunk_size", Type: core.ParamTypeInt, Step: 1}
	if v, ok := applyStep(f, intCtrl, 16, 1); !ok || v != 17 || f.ints["chunk_size"] != 17 {
		t.Fatalf("int step: %v %v %v", v, ok, f.ints)
	}
	floatCtrl := core.ParameterControl{Key: "expansion", Type: core.ParamTypeFloat, Step: 0.1}
	if _, ok := applyStep(f, floatCtrl, 0.5, -1); !ok || f.floats["expansion"] != 0.4 {
		t.Fatalf("float step: %v", f.floats)
	}
	f.refuse = true
	if v, ok := applyStep(f, intCtrl, 17, 1); ok || v != 17 {
		t.Fatal("refused change must keep the current value")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		ctrl core.ParameterControl
		v    float64
		want string
	}{
		{core.ParameterControl{Type: core.ParamTypeInt}, 11, "11"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05}, 0.6, "0.60"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5}, 0.3, "0.3"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}, 0.125, "0.125"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.ctrl, tc.v); got != tc.want {
			t.Errorf("formatValue(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestBiomeTintCoversLandOnly(t *testing.T) {
	cfg := worldgen.DefaultConfig()
	cfg.MapSizeInChunks = 5
	cfg.ChunkSize = 4
	w, err := worldgen.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	img := BiomeTint(w)
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			land := w.Chunks.At(x/4, y/4) == worldgen.ChunkGround
			painted := img.NRGBAAt(x, size.H-1-y).A != 0
			if land != painted {
				t.Fatalf("cell (%d,%d): land=%v painted=%v", x, y, land, painted)
			}
		}
	}
	marks := DecorationMarks(w)
	if len(marks) != len(w.Decorations) {
		t.Fatalf("%d marks for %d decorations", len(marks), len(w.Decorations))
	}
}
