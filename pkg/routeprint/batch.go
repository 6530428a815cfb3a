package routeprint

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/routeprint/pkg/formatter"
)

type Result struct {
	Source   string
	Rendered string
	Err      error
}

// RenderAll renders every source with at most concurrency pages in flight. Results keep the
// order of sources.
func (p *Printer) RenderAll(ctx context.Context, sources []string, output formatter.Output, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(sources))

	workers := pool.New().WithMaxGoroutines(concurrency)
	for i, source := range sources {
		i, source := i, source
		workers.Go(func() {
			rendered, err := p.Render(ctx, source, output)
			results[i] = Result{Source: source, Rendered: rendered, Err: err}
		})
	}
	workers.Wait()

	return results
}
