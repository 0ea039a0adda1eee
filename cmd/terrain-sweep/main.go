// Command terrain-sweep generates maps across a grid of parameters in
// parallel and ranks the parameter sets by how close their average land
// share comes to a target.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"mapgen/internal/generators/terrain"
	"mapgen/internal/logging"
)

type paramSet struct {
	waterLevel float64
	scale      float64
	octaves    int
	policy     terrain.Policy
}

func (p paramSet) String() string {
	return fmt.Sprintf("water=%.2f scale=%.0f octaves=%d policy=%s", p.waterLevel, p.scale, p.octaves, p.policy)
}

type scenarioResult struct {
	params    paramSet
	land      float64
	mountains float64
	rivers    float64
	lakes     float64
	failures  int
}

// distance is how far the average land share lies from target.
func (r scenarioResult) distance(target float64) float64 {
	return math.Abs(r.land - target)
}

func buildSets() []paramSet {
	var sets []paramSet
	for _, water := range []float64{0.3, 0.35, 0.4, 0.45, 0.5} {
		for _, scale := range []float64{25, 50, 100} {
			for _, octaves := range []int{4, 6} {
				for _, policy := range []terrain.Policy{terrain.PolicyRange, terrain.PolicyThreshold} {
					sets = append(sets, paramSet{waterLevel: water, scale: scale, octaves: octaves, policy: policy})
				}
			}
		}
	}
	return sets
}

// runScenario averages statistics for one parameter set over seeds
// 1..seeds. Generation failures are counted, not averaged.
func runScenario(base terrain.Config, params paramSet, seeds int) scenarioResult {
	cfg := base.Clone()
	cfg.WaterLevel = params.waterLevel
	cfg.DeriveRanges()
	cfg.Noise.Scale = params.scale
	cfg.Noise.Octaves = params.octaves
	cfg.Policy = params.policy

	p := terrain.Pipeline{Logger: logging.Discard()}
	res := scenarioResult{params: params}
	ok := 0
	for seed := 1; seed <= seeds; seed++ {
		cfg.Noise.Seed = int64(seed)
		m, err := p.Generate(cfg)
		if err != nil {
			res.failures++
			continue
		}
		ok++
		res.land += 1 - m.Stats.Fraction(terrain.Ocean)
		res.mountains += m.Stats.Fraction(terrain.Mountains)
		res.rivers += float64(m.Stats.Rivers)
		res.lakes += float64(m.Stats.Lakes)
	}
	if ok > 0 {
		n := float64(ok)
		res.land /= n
		res.mountains /= n
		res.rivers /= n
		res.lakes /= n
	}
	return res
}

// sweep evaluates every set on a pool of workers.
func sweep(base terrain.Config, sets []paramSet, seeds, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	return all
}

// rank orders results by distance to target, breaking ties by parameter
// string so output is stable across runs.
func rank(all []scenarioResult, target float64) {
	sort.Slice(all, func(i, j int) bool {
		di, dj := all[i].distance(target), all[j].distance(target)
		if di != dj {
			return di < dj
		}
		return all[i].params.String() < all[j].params.String()
	})
}

func report(w io.Writer, all []scenarioResult, target float64, top int) {
	for i := 0; i < len(all) && i < top; i++ {
		res := all[i]
		fmt.Fprintf(w, "%2d) land=%.3f (Δ%.3f) mountains=%.3f rivers=%.1f lakes=%.1f failures=%d %s\n",
			i+1, res.land, res.distance(target), res.mountains, res.rivers, res.lakes, res.failures, res.params)
	}
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "seeds evaluated per parameter set")
	width := flag.Int("w", 120, "map width")
	height := flag.Int("h", 60, "map height")
	target := flag.Float64("target-land", 0.55, "desired share of non-ocean cells")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()

	base := terrain.DefaultConfig()
	base.Width = *width
	base.Height = *height

	sets := buildSets()
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %dx%d)\n", len(sets), *workers, *seeds, *width, *height)

	start := time.Now()
	all := sweep(base, sets, *seeds, *workers)
	rank(all, *target)

	fmt.Printf("\nTop %d results for land=%.2f (elapsed %s):\n", *top, *target, time.Since(start).Round(time.Millisecond))
	report(os.Stdout, all, *target, *top)
}
