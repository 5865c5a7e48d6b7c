package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/panjf2000/ants/v2"

	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

// Result is the outcome of one batch entry.
type Result struct {
	Config tabgen.Config
	Data   dataframe.DataFrame
	// Seed is the seed the generator ran with. Seeded is false when it is
	// unknown.
	Seed    int64
	Seeded  bool
	Err     error
	Elapsed time.Duration
}

// Run generates every entry on a pool of workers goroutines. Results are in
// entry order. A failing entry does not stop the others; entries not yet
// started when ctx is done fail with ctx.Err().
func Run(ctx context.Context, entries []tabgen.Config, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(entries))
	var wg sync.WaitGroup
	for i, cfg := range entries {
		results[i].Config = cfg

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = runOne(ctx, cfg)
		})
		if err != nil {
			wg.Done()
			results[i].Err = fmt.Errorf("failed to submit %s: %w", cfg.Name, err)
		}
	}
	wg.Wait()

	return results, nil
}

func runOne(ctx context.Context, cfg tabgen.Config) (res Result) {
	res.Config = cfg
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	ds, err := tabgen.New(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	res.Seed, res.Seeded = ds.Seed()

	res.Data, res.Err = ds.Generate()
	return res
}

// Failed counts results with an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
