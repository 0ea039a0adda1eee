package main

import (
	"bytes"
	"strings"
	"testing"

	"mapgen/internal/generators/terrain"
)

func TestSweepEvaluatesEverySet(t *testing.T) {
	base := terrain.DefaultConfig()
	base.Width, base.Height = 24, 12
	sets := []paramSet{
		{waterLevel: 0.3, scale: 25, octaves: 2, policy: terrain.PolicyRange},
		{waterLevel: 0.5, scale: 25, octaves: 2, policy: terrain.PolicyRange},
		{waterLevel: 0.4, scale: 50, octaves: 3, policy: terrain.PolicyThreshold},
	}
	all := sweep(base, sets, 2, 3)
	if len(all) != len(sets) {
		t.Fatalf("got %d results, want %d", len(all), len(sets))
	}
	for _, res := range all {
		if res.failures != 0 {
			t.Fatalf("%s: %d failures", res.params, res.failures)
		}
		if res.land < 0 || res.land > 1 {
			t.Fatalf("%s: land share %v out of range", res.params, res.land)
		}
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	base := terrain.DefaultConfig()
	base.Width, base.Height = 20, 10
	params := paramSet{waterLevel: 0.4, scale: 30, octaves: 3, policy: terrain.PolicyThreshold}
	if a, b := runScenario(base, params, 2), runScenario(base, params, 2); a != b {
		t.Fatalf("scenario results differ: %+v vs %+v", a, b)
	}
}

func TestRunScenarioCountsFailures(t *testing.T) {
	base := terrain.DefaultConfig()
	params := paramSet{waterLevel: 0.9, scale: 30, octaves: 3, policy: terrain.PolicyRange}
	res := runScenario(base, params, 3)
	if res.failures != 3 || res.land != 0 {
		t.Fatalf("water above mountain level should fail every seed: %+v", res)
	}
}

func TestRankAndReport(t *testing.T) {
	all := []scenarioResult{
		{params: paramSet{waterLevel: 0.3}, land: 0.8},
		{params: paramSet{waterLevel: 0.4}, land: 0.52},
		{params: paramSet{waterLevel: 0.5}, land: 0.4},
	}
	rank(all, 0.5)
	if all[0].params.waterLevel != 0.4 || all[2].params.waterLevel != 0.3 {
		t.Fatalf("unexpected order %+v", all)
	}
	var buf bytes.Buffer
	report(&buf, all, 0.5, 2)
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Fatalf("expected 2 report lines, got %d", n)
	}
}

func TestBuildSetsCoversGrid(t *testing.T) {
	if n := len(buildSets()); n != 5*3*2*2 {
		t.Fatalf("got %d sets", n)
	}
}
