package pairwise

import (
	"log/slog"

	"github.com/katalvlaran/pairwise/stats"
)

// DefaultWorkers evaluates cells sequentially.
const DefaultWorkers = 1

const panicWorkersInvalid = "pairwise: WithWorkers: workers must be >= 1"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workers  int
	logger   *slog.Logger
	orderer  Orderer
	resolver *stats.Resolver
}

// WithWorkers sets how many cell evaluations may run concurrently.
// Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = k
	}
}

// WithLogger routes debug events to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOrderer replaces the reordering strategy. A nil orderer is ignored.
func WithOrderer(or Orderer) Option {
	return func(o *Options) {
		if or != nil {
			o.orderer = or
		}
	}
}

// WithResolver replaces the statistic resolver. A nil resolver is ignored.
func WithResolver(r *stats.Resolver) Option {
	return func(o *Options) {
		if r != nil {
			o.resolver = r
		}
	}
}

func defaultOptions() Options {
	return Options{
		workers:  DefaultWorkers,
		logger:   slog.Default(),
		orderer:  LinkageOrderer{},
		resolver: stats.NewResolver(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
