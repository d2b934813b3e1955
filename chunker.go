package filingest

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// DefaultChunkSize and DefaultOverlap are the chunking defaults, in
// characters.
const (
	DefaultChunkSize = 512
	DefaultOverlap   = 50
)

// ValidateChunking checks chunking parameters. size must be positive and
// overlap must satisfy 0 <= overlap < size.
func ValidateChunking(size, overlap int) error {
	if size <= 0 {
		return &ErrConfiguration{Message: fmt.Sprintf("chunk size must be positive, got %d", size)}
	}
	if overlap < 0 {
		return &ErrConfiguration{Message: fmt.Sprintf("overlap must not be negative, got %d", overlap)}
	}
	if overlap >= size {
		return &ErrConfiguration{Message: fmt.Sprintf("overlap %d must be smaller than chunk size %d", overlap, size)}
	}
	return nil
}

// ChunkText splits text into an ordered sequence of overlapping chunks.
//
// Sizes are in characters (runes), so multi-byte text is never cut
// mid-rune. Each chunk is at most size characters (the final chunk may be
// shorter). Every chunk after the first starts exactly overlap characters
// before the previous chunk's end, so the last overlap characters of chunk
// i equal the first overlap characters of chunk i+1, and stripping each
// chunk's leading overlap characters and concatenating reconstructs text
// exactly.
//
// Cut points prefer, in order: the last sentence boundary, then the last
// word boundary, inside a lookback window covering the final 10% of the
// chunk; when neither exists the chunk is cut at the hard size limit.
// Identical input always yields an identical chunk sequence.
func ChunkText(text string, size, overlap int) ([]string, error) {
	if err := ValidateChunking(size, overlap); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	n := len(runes)
	boundaries := sentenceBoundaries(runes)

	var chunks []string
	start := 0
	for {
		if n-start <= size {
			chunks = append(chunks, string(runes[start:]))
			return chunks, nil
		}
		cut := findCut(runes, boundaries, start, start+size, overlap)
		chunks = append(chunks, string(runes[start:cut]))
		start = cut - overlap
	}
}

// findCut picks the cut point for a chunk spanning runes [start, end). The
// lookback window is the last 10% of the chunk but never reaches back to
// start+overlap, which would stall the scan.
func findCut(runes []rune, boundaries []int, start, end, overlap int) int {
	window := (end - start) / 10
	if window < 1 {
		window = 1
	}
	floor := end - window
	if min := start + overlap + 1; floor < min {
		floor = min
	}
	if floor >= end {
		return end
	}

	// Last sentence boundary within [floor, end].
	i := sort.SearchInts(boundaries, end+1) - 1
	if i >= 0 && boundaries[i] >= floor {
		return boundaries[i]
	}

	// Last word boundary: cut just after the space so the next window
	// starts at a word.
	for i := end - 1; i >= floor; i-- {
		if runes[i] == ' ' {
			return i + 1
		}
	}

	return end
}

// abbreviations that should NOT be treated as sentence boundaries.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true,
	"prof": true, "sr": true, "jr": true,
	"vs": true, "etc": true, "inc": true, "ltd": true,
	"e.g": true, "i.e": true, "viz": true, "al": true,
	"approx": true, "dept": true, "est": true,
	"fig": true, "no": true, "vol": true,
}

// isAbbreviation reports whether the word ending at the '.' at dot is a
// common abbreviation.
func isAbbreviation(runes []rune, dot int) bool {
	start := dot
	for start > 0 {
		r := runes[start-1]
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		start--
	}
	return abbreviations[strings.ToLower(string(runes[start:dot]))]
}

// isDecimalDot reports whether the dot at dot is part of a number
// (e.g. 3.14, $1.50).
func isDecimalDot(runes []rune, dot int) bool {
	if dot == 0 || dot+1 >= len(runes) {
		return false
	}
	return runes[dot-1] >= '0' && runes[dot-1] <= '9' &&
		runes[dot+1] >= '0' && runes[dot+1] <= '9'
}

// sentenceBoundaries returns, in increasing order, the rune offsets
// immediately after each sentence-ending punctuation mark. ASCII
// terminators (.!?) count only when followed by a space and an uppercase
// letter, or at end of text, and never inside decimal numbers or after
// common abbreviations. CJK terminators (。！？) always count.
func sentenceBoundaries(runes []rune) []int {
	var out []int
	n := len(runes)
	for i := 0; i < n; i++ {
		r := runes[i]

		if r == '。' || r == '！' || r == '？' {
			out = append(out, i+1)
			continue
		}
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && (isDecimalDot(runes, i) || isAbbreviation(runes, i)) {
			continue
		}

		if i+1 == n {
			out = append(out, n)
		} else if runes[i+1] == ' ' {
			if i+2 == n || unicode.IsUpper(runes[i+2]) {
				out = append(out, i+1)
			}
		}
	}
	return out
}
