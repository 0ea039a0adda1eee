package terrain

import (
	"slices"
	"testing"

	"mapgen/internal/core"
	"mapgen/internal/noise"
)

func TestRangePartitionIsComplete(t *testing.T) {
	cfg := DefaultConfig()
	rc := NewRangeClassifier(cfg)
	for i := 0; i <= 1000; i++ {
		h := float64(i) / 1000
		cat := rc.Category(h, 0, 0)
		spec := cfg.Types[cat]
		if h < spec.Min || h > spec.Max {
			t.Fatalf("h=%v classified %s outside [%v, %v]", h, cat, spec.Min, spec.Max)
		}
		for other := cat + 1; other < NumBaseCategories; other++ {
			// A later range may only share the boundary point.
			s := cfg.Types[other]
			if h > s.Min && h <= s.Max {
				t.Fatalf("h=%v also inside %s", h, other)
			}
		}
	}
}

func TestRangeBoundaryTiesGoToLowerCategory(t *testing.T) {
	cfg := DefaultConfig()
	rc := NewRangeClassifier(cfg)
	plains, hills := cfg.Thresholds()
	cases := []struct {
		h    float64
		want Category
	}{
		{-0.5, Ocean},
		{cfg.WaterLevel, Ocean},
		{plains, Plains},
		{hills, Hills},
		{1, Mountains},
		{1.5, Mountains},
	}
	for _, tc := range cases {
		if got := rc.Category(tc.h, 0, 0); got != tc.want {
			t.Fatalf("Category(%v) = %s, want %s", tc.h, got, tc.want)
		}
	}
}

func TestThresholdJitterIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyThreshold
	tc := NewThresholdClassifier(cfg)
	_, hills := cfg.Thresholds()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := tc.Category(cfg.WaterLevel-0.021, x, y); got != Ocean {
				t.Fatalf("(%d,%d) below water band classified %s", x, y, got)
			}
			if got := tc.Category(hills+0.021, x, y); got != Mountains {
				t.Fatalf("(%d,%d) above hills band classified %s", x, y, got)
			}
		}
	}
}

func TestThresholdJitterVariesPerCell(t *testing.T) {
	cfg := DefaultConfig()
	tc := NewThresholdClassifier(cfg)
	seen := map[Category]bool{}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			seen[tc.Category(cfg.WaterLevel, x, y)] = true
		}
	}
	if !seen[Ocean] || !seen[Plains] {
		t.Fatalf("expected jitter to split the water boundary, got %v", seen)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	field, _ := noise.New(noise.KindPerlin)
	for _, policy := range []Policy{PolicyRange, PolicyThreshold} {
		cfg := DefaultConfig()
		cfg.Policy = policy
		hm := buildHeights(t, 40, 20, cfg.Noise, field)
		a := Classify(hm, NewClassifier(cfg))
		b := Classify(hm, NewClassifier(cfg))
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("%s: classifying twice gave different cells", policy)
		}
	}
}

func TestClassifyDegenerateMapIsOcean(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyThreshold
	hm := &HeightMap{Grid: core.NewGrid[float64](4, 3), Degenerate: true}
	m := Classify(hm, NewClassifier(cfg))
	for i, c := range m.Cells() {
		if c.Category != Ocean {
			t.Fatalf("cell %d = %s, want ocean", i, c.Category)
		}
	}
}

func TestInterpolateStops(t *testing.T) {
	black := core.RGB{}
	white := core.RGB{R: 255, G: 255, B: 255}
	grey := core.RGB{R: 100, G: 100, B: 100}
	cases := []struct {
		name  string
		stops []core.RGB
		t     float64
		want  core.RGB
	}{
		{"empty", nil, 0.5, core.RGB{}},
		{"single", []core.RGB{grey}, 0.9, grey},
		{"start", []core.RGB{black, white}, 0, black},
		{"end", []core.RGB{black, white}, 1, white},
		{"half rounds up", []core.RGB{black, white}, 0.5, core.RGB{R: 128, G: 128, B: 128}},
		{"middle stop", []core.RGB{black, grey, white}, 0.5, grey},
		{"second segment", []core.RGB{black, grey, white}, 0.75, core.RGB{R: 178, G: 178, B: 178}},
	}
	for _, tc := range cases {
		if got := InterpolateStops(tc.stops, tc.t); got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestRangeFactorClamps(t *testing.T) {
	if got := rangeFactor(-1, 0, 1); got != 0 {
		t.Fatalf("below range = %v", got)
	}
	if got := rangeFactor(2, 0, 1); got != 1 {
		t.Fatalf("above range = %v", got)
	}
	if got := rangeFactor(0.5, 0.5, 0.5); got != 0 {
		t.Fatalf("empty range = %v", got)
	}
}

func TestSymbolsComeFromCategorySet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Types[Plains].Symbols = []rune{'.', ',', '\''}
	rc := NewRangeClassifier(cfg)
	used := map[rune]bool{}
	for x := 0; x < 64; x++ {
		c := rc.Style(Plains, 0.45, x, 0)
		if !slices.Contains(cfg.Types[Plains].Symbols, c.Symbol) {
			t.Fatalf("symbol %q not in plains set", c.Symbol)
		}
		used[c.Symbol] = true
	}
	if len(used) < 2 {
		t.Fatalf("expected symbol variety, got %v", used)
	}
}
