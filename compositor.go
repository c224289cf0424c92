package texmod

import "github.com/gogpu/texmod/internal/parallel"

// Compositor shades batches of fragments in parallel.
//
// A batch is split into spans of consecutive fragments and the spans run on
// a worker pool. Every fragment is shaded independently with Shade, so the
// output does not depend on the number of workers or on the order in which
// spans complete.
//
// The zero value is usable and shades every batch on the calling goroutine.
//
// Thread safety: ShadeFragments may be called from several goroutines at
// once, as long as their destination slices do not overlap and none of the
// calls races with Close.
type Compositor struct {
	pool     *parallel.WorkerPool
	spanSize int
}

// NewCompositor creates a compositor and starts its workers.
// Call Close to stop them.
func NewCompositor(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{
		pool:     parallel.NewWorkerPool(o.workers),
		spanSize: o.spanSize,
	}
	componentLogger("compositor").Info("texmod: compositor started",
		"workers", c.pool.Workers(), "spanSize", c.spanSize)
	return c
}

// Workers returns the number of shading goroutines, or 0 when the
// compositor has no pool and shades inline.
func (c *Compositor) Workers() int {
	if c.pool == nil {
		return 0
	}
	return c.pool.Workers()
}

// ShadeFragments writes Shade(frags[i].Color, frags[i].UV, bg.Image,
// bg.Sampler) to dst[i] for every i below min(len(dst), len(frags)) and
// returns that count.
//
// Batches no larger than one span are shaded on the calling goroutine.
// After Close all batches are shaded on the calling goroutine.
func (c *Compositor) ShadeFragments(dst []Color4, frags []Fragment, bg BindGroup) int {
	n := min(len(dst), len(frags))
	if n == 0 {
		return 0
	}
	dst, frags = dst[:n], frags[:n]

	span := c.spanSize
	if span <= 0 {
		span = defaultSpanSize
	}
	if c.pool == nil || n <= span {
		shadeSpan(dst, frags, bg)
		return n
	}

	spans := (n + span - 1) / span
	c.pool.Run(spans, func(i int) {
		lo := i * span
		hi := min(lo+span, n)
		shadeSpan(dst[lo:hi], frags[lo:hi], bg)
	})
	return n
}

// Close stops the workers. Close is safe to call multiple times.
func (c *Compositor) Close() {
	if c.pool == nil {
		return
	}
	if c.pool.IsRunning() {
		componentLogger("compositor").Debug("texmod: compositor stopped")
	}
	c.pool.Close()
}

func shadeSpan(dst []Color4, frags []Fragment, bg BindGroup) {
	for i := range frags {
		dst[i] = Shade(frags[i].Color, frags[i].UV, bg.Image, bg.Sampler)
	}
}
