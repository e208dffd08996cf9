package supplier

import (
	"context"
	"sort"
	"sync"
	"time"
)

type pageResult struct {
	page    int
	updates []PriceUpdate
	err     error
}

// fetchPagesConcurrent fans the remaining pages over a fixed worker pool.
// Results are reassembled in page order so callers see the same sequence a
// sequential walk would produce.
func (c *Client) fetchPagesConcurrent(ctx context.Context, from, to int, updatedSince *time.Time) ([]PriceUpdate, error) {
	workers := c.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if n := to - from + 1; workers > n {
		workers = n
	}

	pages := make(chan int, to-from+1)
	results := make(chan pageResult, to-from+1)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range pages {
				select {
				case <-ctx.Done():
					results <- pageResult{page: page, err: ctx.Err()}
					continue
				default:
				}

				body, err := c.fetchPage(ctx, page, updatedSince)
				if err != nil {
					results <- pageResult{page: page, err: err}
					continue
				}
				results <- pageResult{page: page, updates: body.Data}
			}
		}()
	}

	for page := from; page <= to; page++ {
		pages <- page
	}
	close(pages)

	wg.Wait()
	close(results)

	collected := make([]pageResult, 0, to-from+1)
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		collected = append(collected, res)
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].page < collected[j].page })

	var updates []PriceUpdate
	for _, res := range collected {
		updates = append(updates, res.updates...)
	}
	return updates, nil
}
