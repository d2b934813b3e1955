package filingest

import (
	"log/slog"

	"github.com/filingest/filingest/extract"
)

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithChunkSize sets the maximum chunk length in characters (default 512).
func WithChunkSize(n int) Option {
	return func(p *Preprocessor) { p.size = n }
}

// WithOverlap sets the overlap between consecutive chunks in characters
// (default 50). Must be smaller than the chunk size.
func WithOverlap(n int) Option {
	return func(p *Preprocessor) { p.overlap = n }
}

// WithChain sets the extraction chain. The default chain tries the
// structured PDF strategy, then the plain one.
func WithChain(c *extract.Chain) Option {
	return func(p *Preprocessor) { p.chain = c }
}

// WithLogger sets the structured logger for pipeline diagnostics. When not
// set, output is discarded. The logger is also passed to the default
// extraction chain.
func WithLogger(l *slog.Logger) Option {
	return func(p *Preprocessor) { p.logger = l }
}

// WithTracer sets the Tracer used to create spans around pipeline stages.
// The observer package provides an OTEL-backed implementation. Nil (the
// default) disables tracing.
func WithTracer(t Tracer) Option {
	return func(p *Preprocessor) { p.tracer = t }
}

// WithTokenCounter sets the counter used for the Tokens statistic
// (default HeuristicCounter).
func WithTokenCounter(tc TokenCounter) Option {
	return func(p *Preprocessor) { p.counter = tc }
}

// WithStopwords sets the stopword set used for the Stopwords statistic
// (default the embedded English set).
func WithStopwords(s *Stopwords) Option {
	return func(p *Preprocessor) { p.stop = s }
}
