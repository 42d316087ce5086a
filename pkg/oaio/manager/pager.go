package manager

import (
	"context"
	"iter"
)

// Pager wraps the cursor returned by a relationship query
type Pager struct {
	impl   PagerInterface
	closed bool
}

func (p *Pager) HasNext(ctx context.Context) (bool, error) {
	return p.impl.HasNext(ctx)
}

func (p *Pager) Get(ctx context.Context) ([]EntityReference, error) {
	refs, err := p.impl.Get(ctx)
	if err != nil {
		return nil, err
	}
	return wrapReferences(refs), nil
}

func (p *Pager) Next(ctx context.Context) error {
	return p.impl.Next(ctx)
}

// Close releases the underlying cursor. It is safe to call more than once.
func (p *Pager) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.impl.Close()
}

// Pages yields pages until the pager returns an empty one. Iteration stops
// after the first error is yielded.
func (p *Pager) Pages(ctx context.Context) iter.Seq2[[]EntityReference, error] {
	return func(yield func([]EntityReference, error) bool) {
		for {
			page, err := p.Get(ctx)
			if err != nil {
				yield(nil, err)
				return
			}

			if len(page) == 0 {
				return
			}

			if !yield(page, nil) {
				return
			}

			if err = p.Next(ctx); err != nil {
				yield(nil, err)
				return
			}
		}
	}
}
