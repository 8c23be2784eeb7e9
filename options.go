package mmapbuf

import "github.com/hupe1980/mmapbuf/internal/mmap"

// AccessPattern provides hints to the kernel about how the mapped data
// will be accessed. Hints are advisory; ignoring them never affects
// correctness.
type AccessPattern = mmap.AccessPattern

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault = mmap.AccessDefault
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential = mmap.AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom = mmap.AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed = mmap.AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed = mmap.AccessDontNeed
)

type options struct {
	logger      *Logger
	advise      AccessPattern
	syncOnClose bool
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures buffer construction behavior.
type Option func(*options)

// WithLogger configures structured logging of buffer lifecycle events.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithAdvise applies an access-pattern hint to the mapping right after
// construction.
func WithAdvise(pattern AccessPattern) Option {
	return func(o *options) {
		o.advise = pattern
	}
}

// WithSyncOnClose flushes modified pages to storage synchronously before
// the buffer is torn down. Without it, durability is left to the page
// cache, which persists the data eventually but without ordering
// guarantees at close time.
func WithSyncOnClose(sync bool) Option {
	return func(o *options) {
		o.syncOnClose = sync
	}
}
