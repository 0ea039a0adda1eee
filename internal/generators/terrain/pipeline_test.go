package terrain

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"slices"
	"testing"
)

func quietPipeline() *Pipeline {
	return &Pipeline{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 10
	cfg.Noise = scenarioNoise()
	cfg.Features = Features{Rivers: 0, MinRiverLength: 1, Lakes: false}
	return cfg
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero octaves", func(c *Config) { c.Noise.Octaves = 0 }},
		{"zero scale", func(c *Config) { c.Noise.Scale = 0 }},
		{"persistence above one", func(c *Config) { c.Noise.Persistence = 1.5 }},
		{"zero persistence", func(c *Config) { c.Noise.Persistence = 0 }},
		{"lacunarity below one", func(c *Config) { c.Noise.Lacunarity = 0.5 }},
		{"water above mountain", func(c *Config) { c.WaterLevel, c.MountainLevel = 0.8, 0.7 }},
		{"water equals mountain", func(c *Config) { c.WaterLevel, c.MountainLevel = 0.5, 0.5 }},
		{"negative rivers", func(c *Config) { c.Features.Rivers = -1 }},
		{"zero min river length", func(c *Config) { c.Features.MinRiverLength = 0 }},
		{"unknown policy", func(c *Config) { c.Policy = "nearest" }},
		{"unknown noise", func(c *Config) { c.Noise.Kind = "worley" }},
		{"frequency overflow", func(c *Config) { c.Noise.Lacunarity, c.Noise.Octaves = 1e300, 3 }},
		{"tiny scale", func(c *Config) { c.Noise.Scale = 1e-320 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		res, err := quietPipeline().Generate(cfg)
		if !errors.Is(err, ErrInvalidParameters) {
			t.Fatalf("%s: expected ErrInvalidParameters, got %v", tc.name, err)
		}
		if res != nil {
			t.Fatalf("%s: got a result alongside the error", tc.name)
		}
	}
}

func TestInvalidParametersListsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Noise.Octaves = 0
	err := cfg.Validate()
	var ipe *InvalidParametersError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidParametersError, got %T", err)
	}
	if len(ipe.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", ipe.Problems)
	}
}

func TestGenerateScenarioUsesOnlyBaseCategories(t *testing.T) {
	res, err := quietPipeline().Generate(scenarioConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Width != 20 || res.Height != 10 || len(res.Cells) != 200 {
		t.Fatalf("unexpected result shape %dx%d (%d cells)", res.Width, res.Height, len(res.Cells))
	}
	for i, c := range res.Cells {
		if !c.Category.IsBase() {
			t.Fatalf("cell %d has carved category %s", i, c.Category)
		}
	}
	total := 0
	for _, n := range res.Stats.Counts {
		total += n
	}
	if total != 200 {
		t.Fatalf("stats count %d cells, want 200", total)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, policy := range []Policy{PolicyRange, PolicyThreshold} {
		cfg := DefaultConfig()
		cfg.Policy = policy
		a, err := quietPipeline().Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		b, err := quietPipeline().Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !slices.Equal(a.Cells, b.Cells) || !slices.Equal(a.Heights, b.Heights) {
			t.Fatalf("%s: identical configs produced different maps", policy)
		}
		if a.ID == b.ID {
			t.Fatalf("map ids should be unique")
		}
	}
}

func TestLongMinimumLengthYieldsNoRivers(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Features = Features{Rivers: 5, MinRiverLength: 1000}
	res, err := quietPipeline().Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Stats.Counts[River] != 0 || res.Stats.Rivers != 0 {
		t.Fatalf("expected no river cells, got %d", res.Stats.Counts[River])
	}
}

func TestLakesStayBelowWaterLevel(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		cfg := DefaultConfig()
		cfg.Policy = PolicyThreshold
		cfg.Noise.Seed = seed
		res, err := quietPipeline().Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for i, c := range res.Cells {
			if c.Category == Lake && res.Heights[i] > cfg.WaterLevel {
				t.Fatalf("seed %d: lake cell %d at height %v above water level", seed, i, res.Heights[i])
			}
		}
	}
}

func TestDegenerateFieldYieldsOceanAndWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1, 1
	res, err := quietPipeline().Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Degenerate {
		t.Fatalf("expected degenerate result")
	}
	if len(res.Warnings) != 1 || !errors.Is(res.Warnings[0], ErrDegenerateHeightField) {
		t.Fatalf("warnings = %v", res.Warnings)
	}
	if got := res.At(0, 0).Category; got != Ocean {
		t.Fatalf("degenerate cell = %s, want ocean", got)
	}
}

func TestNegativeWaterLevelGenerates(t *testing.T) {
	for _, policy := range []Policy{PolicyRange, PolicyThreshold} {
		cfg := ApplyMap(DefaultConfig(), map[string]string{"water_level": "-0.2", "policy": string(policy)})
		if got := cfg.Types[Ocean]; got.Min != -0.2 || got.Max != -0.2 {
			t.Fatalf("%s: ocean range = [%g, %g], want [-0.2, -0.2]", policy, got.Min, got.Max)
		}
		res, err := quietPipeline().Generate(cfg)
		if err != nil {
			t.Fatalf("%s: Generate: %v", policy, err)
		}
		if res.Degenerate {
			t.Fatalf("%s: unexpected degenerate result", policy)
		}
		if n := res.Stats.Counts[Ocean]; n != 0 {
			t.Fatalf("%s: %d ocean cells below a negative water level", policy, n)
		}
	}
}

func TestNonFiniteNoiseFailsGenerate(t *testing.T) {
	p := quietPipeline()
	p.Noise = constField(math.NaN())
	res, err := p.Generate(scenarioConfig())
	if !errors.Is(err, ErrNonFiniteHeight) {
		t.Fatalf("err = %v, want ErrNonFiniteHeight", err)
	}
	if res != nil {
		t.Fatalf("got a result alongside the error")
	}
}

func TestStatsFraction(t *testing.T) {
	var s Stats
	if s.Fraction(Ocean) != 0 {
		t.Fatalf("empty stats should report zero")
	}
	s.Counts[Ocean] = 3
	s.Counts[Hills] = 1
	if got := s.Fraction(Ocean); got != 0.75 {
		t.Fatalf("Fraction(Ocean) = %v", got)
	}
}
