package wordlego

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/wordlego/blobstore"
	"github.com/hupe1980/wordlego/resultlog"
	"github.com/hupe1980/wordlego/table"
)

// DefaultMaxGuesses is the game's standard guess budget.
const DefaultMaxGuesses = 6

type options struct {
	maxGuesses          int
	workers             int
	logger              *Logger
	sink                resultlog.Sink
	snapshotStore       blobstore.BlobStore
	snapshotName        string
	snapshotCompression table.Compression
}

// Option configures Solver construction.
type Option func(*options)

// WithMaxGuesses sets the total guess budget, prior guesses included.
// Default: DefaultMaxGuesses.
func WithMaxGuesses(n int) Option {
	return func(o *options) {
		o.maxGuesses = n
	}
}

// WithWorkers sets the size of the fixed worker pool used to evaluate
// first-guess candidates. If n <= 0 the pool matches the available
// hardware parallelism. The pool is created per search and joined
// before the result is reported.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResultSink configures where per-candidate (expected value, word)
// records go during the search. Default: resultlog.Discard.
func WithResultSink(sink resultlog.Sink) Option {
	return func(o *options) {
		if sink == nil {
			sink = resultlog.Discard
		}
		o.sink = sink
	}
}

// WithSnapshotStore configures a blob store for caching the full
// compatibility table across invocations. On construction the solver
// tries to load the named snapshot; a missing, corrupt or
// wrong-vocabulary snapshot falls back to a fresh build, which is then
// saved back to the store.
func WithSnapshotStore(store blobstore.BlobStore, name string) Option {
	return func(o *options) {
		o.snapshotStore = store
		o.snapshotName = name
	}
}

// WithSnapshotCompression selects the snapshot compression.
// Default: table.CompressionZstd.
func WithSnapshotCompression(c table.Compression) Option {
	return func(o *options) {
		o.snapshotCompression = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxGuesses:          DefaultMaxGuesses,
		workers:             runtime.GOMAXPROCS(0),
		logger:              NoopLogger(),
		sink:                resultlog.Discard,
		snapshotCompression: table.CompressionZstd,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}
