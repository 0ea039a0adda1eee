package terrain

import (
	"errors"
	"math"
	"slices"
	"testing"

	"mapgen/internal/noise"
)

func scenarioNoise() NoiseParams {
	return NoiseParams{Kind: noise.KindPerlin, Seed: 42, Scale: 50, Octaves: 1, Persistence: 0.5, Lacunarity: 2}
}

func buildHeights(t *testing.T, w, h int, p NoiseParams, field noise.Field) *HeightMap {
	t.Helper()
	hm, err := BuildHeightMap(w, h, p, field)
	if err != nil {
		t.Fatalf("BuildHeightMap: %v", err)
	}
	return hm
}

// constField returns the same sample everywhere.
type constField float64

func (f constField) Noise2D(x, y float64, seed int64) float64 { return float64(f) }

func TestBuildHeightMapScenarioBounds(t *testing.T) {
	field, err := noise.New(noise.KindPerlin)
	if err != nil {
		t.Fatalf("noise.New: %v", err)
	}
	hm := buildHeights(t, 20, 10, scenarioNoise(), field)
	if hm.W != 20 || hm.H != 10 || len(hm.Cells()) != 200 {
		t.Fatalf("unexpected shape %dx%d (%d cells)", hm.W, hm.H, len(hm.Cells()))
	}
	if hm.Degenerate {
		t.Fatalf("scenario map should not be degenerate")
	}
	sawZero, sawOne := false, false
	for i, v := range hm.Cells() {
		if v < 0 || v > 1 {
			t.Fatalf("cell %d out of range: %v", i, v)
		}
		sawZero = sawZero || v == 0
		sawOne = sawOne || v == 1
	}
	if !sawZero || !sawOne {
		t.Fatalf("expected both 0 and 1 after normalisation (zero=%v one=%v)", sawZero, sawOne)
	}
}

func TestBuildHeightMapIsDeterministic(t *testing.T) {
	p := scenarioNoise()
	p.Octaves = 4
	for _, kind := range noise.Kinds() {
		field, err := noise.New(kind)
		if err != nil {
			t.Fatalf("noise.New(%s): %v", kind, err)
		}
		a := buildHeights(t, 32, 16, p, field)
		b := buildHeights(t, 32, 16, p, field)
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("%s: height maps differ for identical parameters", kind)
		}
	}
}

func TestBuildHeightMapSeedChangesOutput(t *testing.T) {
	field, _ := noise.New(noise.KindPerlin)
	p := scenarioNoise()
	a := buildHeights(t, 16, 16, p, field)
	p.Seed++
	b := buildHeights(t, 16, 16, p, field)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("different seeds produced identical maps")
	}
}

func TestBuildHeightMapSingleCellIsDegenerate(t *testing.T) {
	field, _ := noise.New(noise.KindPerlin)
	hm := buildHeights(t, 1, 1, scenarioNoise(), field)
	if !hm.Degenerate {
		t.Fatalf("1x1 map must be degenerate")
	}
	if got := hm.At(0, 0); got != 0 {
		t.Fatalf("degenerate value = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	values := []float64{-2, 0, 2}
	if degenerate, err := normalize(values); err != nil || degenerate {
		t.Fatalf("non-flat input reported degenerate")
	}
	if !slices.Equal(values, []float64{0, 0.5, 1}) {
		t.Fatalf("normalize = %v", values)
	}
	flat := []float64{3, 3, 3}
	if degenerate, err := normalize(flat); err != nil || !degenerate {
		t.Fatalf("flat input not reported degenerate")
	}
	if !slices.Equal(flat, []float64{0, 0, 0}) {
		t.Fatalf("flat input not zeroed: %v", flat)
	}
}

func TestContinentalBiasPeaksAtCentre(t *testing.T) {
	field, _ := noise.New(noise.KindPerlin)
	hm := buildHeights(t, 9, 9, scenarioNoise(), field)
	bias := continentalBias(hm.Grid)
	centre := bias[hm.Index(4, 4)]
	corner := bias[hm.Index(0, 0)]
	if !(centre > corner) {
		t.Fatalf("centre bias %v should exceed corner bias %v", centre, corner)
	}
	if corner >= 0 {
		t.Fatalf("corner bias should be negative, got %v", corner)
	}
}

func TestNormalizeRejectsNonFinite(t *testing.T) {
	for _, values := range [][]float64{
		{0, math.NaN(), 1},
		{0, math.Inf(1)},
		{-math.MaxFloat64, math.MaxFloat64},
	} {
		if _, err := normalize(values); !errors.Is(err, ErrNonFiniteHeight) {
			t.Fatalf("normalize(%v) err = %v, want ErrNonFiniteHeight", values, err)
		}
	}
}

func TestBuildHeightMapNaNFieldFails(t *testing.T) {
	if _, err := BuildHeightMap(8, 4, scenarioNoise(), constField(math.NaN())); !errors.Is(err, ErrNonFiniteHeight) {
		t.Fatalf("err = %v, want ErrNonFiniteHeight", err)
	}
}

func TestTopFrequency(t *testing.T) {
	p := scenarioNoise()
	p.Octaves = 3
	if got := p.TopFrequency(); math.Abs(got-4.0/50) > 1e-12 {
		t.Fatalf("TopFrequency = %v, want %v", got, 4.0/50)
	}
}
