package scan

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Item is the outcome of scanning one file in a batch.
type Item struct {
	Path   string
	Result Result
	Err    error
}

// ScanFiles scans paths with at most the configured number of files in
// flight. Items are returned in input order; one failing file does not stop
// the others. Files not yet started when ctx is done get ctx's error.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string) []Item {
	items := make([]Item, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		i, path := i, path
		items[i].Path = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Result, items[i].Err = s.ScanFile(gctx, path)
			return nil
		})
	}
	_ = g.Wait()
	return items
}
