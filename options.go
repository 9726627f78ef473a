package aligned

import "github.com/hupe1980/aligned/mem"

type options struct {
	allocator mem.Allocator
}

// Option configures buffer construction.
type Option func(*options)

// WithAllocator selects the allocator backing the buffer. If a is nil,
// mem.DefaultAllocator is used.
func WithAllocator(a mem.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{allocator: mem.DefaultAllocator}
	for _, fn := range optFns {
		fn(&o)
	}

	return o
}
