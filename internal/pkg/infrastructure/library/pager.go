package library

import (
	"context"
)

// pager splits an already computed result into pages of pageSize
type pager struct {
	pages [][]string
	index int
}

func newPager(refs []string, pageSize int) *pager {
	if pageSize < 1 {
		pageSize = 1
	}

	p := &pager{pages: [][]string{}}

	for len(refs) > 0 {
		n := min(pageSize, len(refs))
		p.pages = append(p.pages, refs[:n])
		refs = refs[n:]
	}

	return p
}

func (p *pager) HasNext(ctx context.Context) (bool, error) {
	return p.index+1 < len(p.pages), nil
}

func (p *pager) Get(ctx context.Context) ([]string, error) {
	if p.index >= len(p.pages) {
		return []string{}, nil
	}
	page := make([]string, len(p.pages[p.index]))
	copy(page, p.pages[p.index])
	return page, nil
}

func (p *pager) Next(ctx context.Context) error {
	if p.index < len(p.pages) {
		p.index++
	}
	return nil
}

func (p *pager) Close() {
	p.pages = nil
	p.index = 0
}
