package texmod

// Option configures a Compositor during creation.
//
// Example:
//
//	c := texmod.NewCompositor(texmod.WithWorkers(4), texmod.WithSpanSize(1024))
//	defer c.Close()
type Option func(*compositorOptions)

// defaultSpanSize is the number of fragments shaded per work item.
const defaultSpanSize = 4096

type compositorOptions struct {
	workers  int
	spanSize int
}

func defaultOptions() compositorOptions {
	return compositorOptions{
		workers:  0, // GOMAXPROCS
		spanSize: defaultSpanSize,
	}
}

// WithWorkers sets the number of shading goroutines.
// Zero or a negative value selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *compositorOptions) {
		o.workers = n
	}
}

// WithSpanSize sets how many consecutive fragments one work item shades.
// Values below one are ignored.
func WithSpanSize(n int) Option {
	return func(o *compositorOptions) {
		if n > 0 {
			o.spanSize = n
		}
	}
}
