package client

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type remotePager struct {
	client  *remoteManager
	current []string
	next    string
}

func newPager(c *remoteManager, first pageResponse) *remotePager {
	p := &remotePager{client: c}
	p.set(first)
	return p
}

func (p *remotePager) set(page pageResponse) {
	p.current = page.References
	if p.current == nil {
		p.current = []string{}
	}
	p.next = page.Next
}

func (p *remotePager) HasNext(ctx context.Context) (bool, error) {
	return p.next != "", nil
}

func (p *remotePager) Get(ctx context.Context) ([]string, error) {
	page := make([]string, len(p.current))
	copy(page, p.current)
	return page, nil
}

func (p *remotePager) Next(ctx context.Context) error {
	if p.next == "" {
		p.current = []string{}
		return nil
	}

	var err error

	ctx, span := tracer.Start(ctx, "next-page", trace.WithAttributes(attribute.String(TraceAttributeManager, p.client.identifier)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	page := pageResponse{}
	err = p.client.get(ctx, pagePath(p.next), &page)
	if err != nil {
		return err
	}

	p.set(page)
	return nil
}

// Close tells the remote manager that it may release any remaining pages.
// Failures are ignored since the remote side expires abandoned cursors.
func (p *remotePager) Close() {
	if p.next == "" {
		return
	}

	_ = p.client.delete(context.Background(), pagePath(p.next))
	p.next = ""
	p.current = []string{}
}
