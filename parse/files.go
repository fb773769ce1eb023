package parse

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/go-sjson/config"
)

// FileResult is the outcome of parsing one file.
type FileResult struct {
	Path  string
	Value *config.Value
	Err   error
}

// ParseFiles parses paths concurrently, at most limit at a time (no limit
// if limit <= 0). Results are in the order of paths; a failed file has a
// nil Value and its error in Err. The returned error is only ever the
// context's.
func ParseFiles(ctx context.Context, paths []string, limit int, opts ...ParseOption) ([]FileResult, error) {
	res := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		res[i].Path = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i].Value, res[i].Err = ParseFile(path, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, ctx.Err()
}
