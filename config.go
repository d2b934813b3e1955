package filingest

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Options is the file-based configuration surface, mirroring the functional
// options callers would otherwise pass to New.
type Options struct {
	ChunkSize    int    `toml:"chunk_size"`
	ChunkOverlap int    `toml:"chunk_overlap"`
	Encoding     string `toml:"encoding"` // tiktoken encoding; empty = chars/4 heuristic
}

// DefaultOptions returns Options with all defaults applied.
func DefaultOptions() Options {
	return Options{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultOverlap,
	}
}

// LoadOptions reads a TOML options file. Keys absent from the file keep
// their defaults; validation happens in New.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// NewFromOptions builds a Preprocessor from file-based Options, plus any
// extra functional options (applied last, so they win).
func NewFromOptions(o Options, extra ...Option) (*Preprocessor, error) {
	opts := []Option{
		WithChunkSize(o.ChunkSize),
		WithOverlap(o.ChunkOverlap),
	}
	if o.Encoding != "" {
		tc, err := NewTiktokenCounter(o.Encoding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTokenCounter(tc))
	}
	return New(append(opts, extra...)...)
}
