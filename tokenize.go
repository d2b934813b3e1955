package filingest

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
)

// Sentences splits cleaned text into sentences using the same
// abbreviation- and decimal-aware boundary detection as the chunker.
func Sentences(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	var out []string
	start := 0
	for _, b := range sentenceBoundaries(runes) {
		s := strings.TrimSpace(string(runes[start:b]))
		if s != "" {
			out = append(out, s)
		}
		start = b
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		out = append(out, rest)
	}
	return out
}

// Words splits text into whitespace-delimited tokens.
func Words(text string) []string {
	return strings.Fields(text)
}

// Stopwords is a process-wide set of common words excluded from certain
// downstream analyses. Obtain the English set via EnglishStopwords, or load
// a custom list with ParseStopwords.
type Stopwords struct {
	set map[string]struct{}
}

// Has reports whether word is a stopword. Matching is case-insensitive and
// ignores leading and trailing punctuation, so "The" and "the," both match.
func (s *Stopwords) Has(word string) bool {
	_, ok := s.set[normalizeWord(word)]
	return ok
}

// Count returns how many of the given words are stopwords.
func (s *Stopwords) Count(words []string) int {
	n := 0
	for _, w := range words {
		if s.Has(w) {
			n++
		}
	}
	return n
}

// Len returns the number of words in the set.
func (s *Stopwords) Len() int { return len(s.set) }

func normalizeWord(w string) string {
	w = strings.TrimFunc(w, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return strings.ToLower(w)
}

// ParseStopwords reads a stopword list, one word per line. Blank lines and
// lines starting with '#' are skipped. An empty list is an error: a usable
// resource must contain at least one word.
func ParseStopwords(r io.Reader) (*Stopwords, error) {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list: %w", err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("stopword list is empty")
	}
	return &Stopwords{set: set}, nil
}

//go:embed stopwords_en.txt
var stopwordsEN string

var (
	englishOnce sync.Once
	english     *Stopwords
)

// EnglishStopwords returns the embedded English stopword set. The set is
// built once per process on first use and cached for the process lifetime.
func EnglishStopwords() *Stopwords {
	englishOnce.Do(func() {
		s, err := ParseStopwords(strings.NewReader(stopwordsEN))
		if err != nil {
			// The list is embedded at compile time; a parse failure
			// means a broken build.
			panic(fmt.Sprintf("filingest: embedded stopword list: %v", err))
		}
		english = s
	})
	return english
}
