// Package extract provides PDF text extraction for the preprocessing
// pipeline: an ordered chain of strategies tried in sequence until one
// yields non-empty text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Strategy is a single text-extraction method. Extract returns the
// document's plain text, which may be empty for documents with no
// extractable text (that is not an error).
type Strategy interface {
	Name() string
	Extract(content []byte) (string, error)
}

// Error reports that every extraction strategy failed for a document.
// It carries the source path for diagnostics.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Chain runs extraction strategies in order, returning the first non-empty
// result. Strategy failures are logged and trigger the next strategy. When
// the chain is exhausted without text and any strategy failed, Extract
// returns an *Error; when every strategy succeeded but none produced text,
// the document simply has no extractable text and Extract returns an empty
// string with no error.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithStrategies replaces the default strategy list. Order matters:
// strategies are tried first to last.
func WithStrategies(s ...Strategy) ChainOption {
	return func(c *Chain) { c.strategies = s }
}

// WithLogger sets the structured logger for extraction diagnostics.
func WithLogger(l *slog.Logger) ChainOption {
	return func(c *Chain) { c.logger = l }
}

// NewChain creates a Chain. The default strategies are StructuredPDF
// followed by PlainPDF.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{
		strategies: []Strategy{NewStructuredPDF(), NewPlainPDF()},
		logger:     nopLogger,
	}
	for _, o := range opts {
		o(c)
	}
	if c.logger == nil {
		c.logger = nopLogger
	}
	return c
}

// Extract reads the file at path and runs the strategies in order. The
// winning text is NFKC-normalized so ligatures from PDF fonts (ﬁ, ﬂ)
// become their ASCII expansions before downstream cleaning.
func (c *Chain) Extract(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	var errs []error
	for _, s := range c.strategies {
		text, err := s.Extract(content)
		if err != nil {
			c.logger.Warn("extraction strategy failed",
				"strategy", s.Name(), "path", path, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			c.logger.Warn("extraction strategy produced no text",
				"strategy", s.Name(), "path", path)
			continue
		}
		c.logger.Info("text extracted",
			"strategy", s.Name(), "path", path, "chars", len(text))
		return norm.NFKC.String(text), nil
	}

	if len(errs) > 0 {
		return "", &Error{Path: path, Err: errors.Join(errs...)}
	}
	c.logger.Warn("no extractable text", "path", path)
	return "", nil
}

// nopLogger discards all output. Used when WithLogger is not set.
var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
