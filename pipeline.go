package filingest

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/filingest/filingest/extract"
)

// Preprocessor runs the extract → clean → chunk pipeline for one document
// per Process call. It holds no per-document state and is safe to reuse.
type Preprocessor struct {
	chain   *extract.Chain
	size    int
	overlap int
	logger  *slog.Logger
	tracer  Tracer // nil = no tracing
	counter TokenCounter
	stop    *Stopwords
}

// New creates a Preprocessor. Invalid chunking parameters are rejected with
// *ErrConfiguration, never silently corrected.
func New(opts ...Option) (*Preprocessor, error) {
	p := &Preprocessor{
		size:    DefaultChunkSize,
		overlap: DefaultOverlap,
		counter: HeuristicCounter{},
	}
	for _, o := range opts {
		o(p)
	}
	if err := ValidateChunking(p.size, p.overlap); err != nil {
		return nil, err
	}
	if p.logger == nil {
		p.logger = nopLogger
	}
	if p.chain == nil {
		p.chain = extract.NewChain(extract.WithLogger(p.logger))
	}
	if p.stop == nil {
		p.stop = EnglishStopwords()
	}
	return p, nil
}

// Process extracts, cleans, and chunks the PDF at path. Extraction failures
// surface as *extract.Error; the clean and chunk stages are pure and cannot
// fail once the configuration is validated. A document with no extractable
// text yields a Result with empty text and zero chunks.
func (p *Preprocessor) Process(ctx context.Context, path string) (Result, error) {
	_, span := p.startSpan(ctx, "filingest.process", StringAttr("doc.source", path))

	raw, err := p.chain.Extract(path)
	if err != nil {
		if span != nil {
			span.Error(err)
			span.End()
		}
		return Result{}, err
	}

	text := Clean(raw)
	chunkTexts, err := ChunkText(text, p.size, p.overlap)
	if err != nil {
		if span != nil {
			span.Error(err)
			span.End()
		}
		return Result{}, err
	}

	doc := Document{
		ID:        NewID(),
		Source:    path,
		Raw:       raw,
		Text:      text,
		CreatedAt: time.Now().Unix(),
	}

	chunks := make([]Chunk, len(chunkTexts))
	for i, t := range chunkTexts {
		overlap := p.overlap
		if i == 0 {
			overlap = 0
		}
		chunks[i] = Chunk{
			ID:         NewID(),
			DocumentID: doc.ID,
			Index:      i,
			Text:       t,
			Overlap:    overlap,
		}
	}

	words := Words(text)
	stats := Stats{
		Chars:     utf8.RuneCountInString(text),
		Words:     len(words),
		Stopwords: p.stop.Count(words),
		Tokens:    p.counter.Count(text),
		Chunks:    len(chunks),
	}

	if span != nil {
		span.SetAttr(IntAttr("doc.chars", stats.Chars), IntAttr("doc.chunks", stats.Chunks))
		span.End()
	}
	p.logger.Info("document processed",
		"source", path, "chars", stats.Chars, "chunks", stats.Chunks)

	return Result{Document: doc, Chunks: chunks, Stats: stats}, nil
}

func (p *Preprocessor) startSpan(ctx context.Context, name string, attrs ...SpanAttr) (context.Context, Span) {
	if p.tracer == nil {
		return ctx, nil
	}
	return p.tracer.Start(ctx, name, attrs...)
}

// ProcessFile is the convenience entry point: process a single PDF with the
// given chunk size and the default overlap.
func ProcessFile(path string, chunkSize int) (Result, error) {
	p, err := New(WithChunkSize(chunkSize))
	if err != nil {
		return Result{}, err
	}
	return p.Process(context.Background(), path)
}

// nopLogger discards all output. Used when WithLogger is not set.
var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
