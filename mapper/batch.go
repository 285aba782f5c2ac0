package mapper

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const batchConcurrency = 8

// MapProducts maps a batch of products concurrently, preserving input
// order in the output. Individual failures become failure envelopes, so
// the returned slice always has one result per product.
func (m *Mapper) MapProducts(ctx context.Context, products []Product, opts ...Option) []Result {
	results := make([]Result, len(products))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i := range products {
		g.Go(func() error {
			results[i] = m.MapProduct(ctx, products[i], opts...)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return results
}
