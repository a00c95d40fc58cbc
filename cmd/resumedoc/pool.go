package main

import (
	"context"

	resumedoc "github.com/alnah/go-resumedoc"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input resumedoc.Input) (*resumedoc.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*resumedoc.Renderer)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
	Close() error
}

// poolFactory builds the pool once the effective options are known.
type poolFactory func(size int, opts []resumedoc.Option) (Pool, error)

// rendererPool adapts resumedoc.RendererPool to Pool.
type rendererPool struct {
	pool *resumedoc.RendererPool
}

// Compile-time check that rendererPool implements Pool.
var _ Pool = (*rendererPool)(nil)

// newRendererPool checks opts by building one renderer up front, so a bad
// style or asset path fails the run once instead of once per worker.
// Renderers are cheap until the chrome engine launches a browser.
func newRendererPool(size int, opts []resumedoc.Option) (Pool, error) {
	first, err := resumedoc.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	if err := first.Close(); err != nil {
		return nil, err
	}
	return &rendererPool{pool: resumedoc.NewRendererPool(size, opts...)}, nil
}

func (p *rendererPool) Acquire() (Converter, error) {
	r, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *rendererPool) Release(c Converter) {
	if r, ok := c.(*resumedoc.Renderer); ok {
		p.pool.Release(r)
	}
}

func (p *rendererPool) Size() int { return p.pool.Size() }

func (p *rendererPool) Close() error { return p.pool.Close() }
