package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds parallelism when fetching a batch of posting URLs.
const maxConcurrentFetches = 4

// BatchResult pairs a fetched posting text with its source URL. Err is set
// when that URL failed; other URLs in the batch are unaffected.
type BatchResult struct {
	URL  string
	Text string
	Err  error
}

// Batch fetches several posting URLs concurrently and extracts their main
// text. Results keep input order. A failed URL records its error in the
// corresponding result instead of aborting the batch.
func Batch(ctx context.Context, urls []string, opts *Options) []BatchResult {
	results := make([]BatchResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, u := range urls {
		g.Go(func() error {
			results[i] = BatchResult{URL: u}

			fetched, err := URL(ctx, u, opts)
			if err != nil {
				results[i].Err = err
				return nil
			}

			text, err := ExtractMainText(fetched.HTML, JobPostingSelectors())
			if err != nil {
				results[i].Err = err
				return nil
			}

			results[i].Text = text
			return nil
		})
	}

	// Workers only report errors through their result slot.
	_ = g.Wait()

	return results
}
