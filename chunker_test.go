package filingest

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkTextEmpty(t *testing.T) {
	chunks, err := ChunkText("", 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 0 {
		t.Error("expected no chunks")
	}
}

func TestChunkTextShort(t *testing.T) {
	chunks, err := ChunkText("Hello, world!", 512, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 1 || chunks[0] != "Hello, world!" {
		t.Errorf("got %q", chunks)
	}
}

func TestChunkTextHardCuts(t *testing.T) {
	// No sentence or word boundaries: fixed stride size-overlap.
	chunks, err := ChunkText("abcdefghijklmnopqrstuvwxyz", 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abcdefghij", "hijklmnopq", "opqrstuvwx", "vwxyz"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks %q, want %d", len(chunks), chunks, len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestChunkTextOverlapEquality(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	text = strings.TrimSpace(text)
	size, overlap := 100, 25
	chunks, err := ChunkText(text, size, overlap)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > size {
			t.Errorf("chunk %d length %d exceeds %d", i, len(c), size)
		}
		if i == 0 {
			continue
		}
		prev := chunks[i-1]
		if prev[len(prev)-overlap:] != c[:overlap] {
			t.Errorf("chunk %d: overlap mismatch %q vs %q",
				i, prev[len(prev)-overlap:], c[:overlap])
		}
	}
}

func TestChunkTextRoundTrip(t *testing.T) {
	text := Clean(strings.Repeat("Net revenue grew 12% to $4.2 billion. Operating costs fell. ", 15))
	for _, p := range []struct{ size, overlap int }{
		{80, 12}, {64, 0}, {200, 50},
	} {
		chunks, err := ChunkText(text, p.size, p.overlap)
		if err != nil {
			t.Fatal(err)
		}
		var b strings.Builder
		for i, c := range chunks {
			if i == 0 {
				b.WriteString(c)
			} else {
				b.WriteString(c[p.overlap:])
			}
		}
		if b.String() != text {
			t.Errorf("size=%d overlap=%d: reconstruction differs", p.size, p.overlap)
		}
	}
}

func TestChunkTextPrefersSentenceBoundary(t *testing.T) {
	// "One two three four five." is 24 bytes; the boundary at 24 falls in
	// the lookback window for size 25.
	text := "One two three four five. Six seven eight nine ten."
	chunks, err := ChunkText(text, 25, 5)
	if err != nil {
		t.Fatal(err)
	}
	if chunks[0] != "One two three four five." {
		t.Errorf("first chunk = %q", chunks[0])
	}
}

func TestChunkTextPrefersWordBoundary(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("zzzzz ", 40))
	chunks, err := ChunkText(text, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Repeat("zzzzz ", 16); chunks[0] != want {
		t.Errorf("first chunk = %q (len %d), want word-aligned cut", chunks[0], len(chunks[0]))
	}
}

func TestChunkTextMultibyteStaysValidUTF8(t *testing.T) {
	// Spaceless CJK text forces hard cuts; they must never split a rune.
	text := strings.Repeat("株", 20)
	chunks, err := ChunkText(text, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is invalid UTF-8: %q", i, c)
		}
		if n := utf8.RuneCountInString(c); n > 10 {
			t.Errorf("chunk %d has %d runes, want <= 10", i, n)
		}
		if i == 0 {
			continue
		}
		prev := []rune(chunks[i-1])
		cur := []rune(c)
		if string(prev[len(prev)-3:]) != string(cur[:3]) {
			t.Errorf("chunk %d: overlap mismatch", i)
		}
	}
	var b strings.Builder
	for i, c := range chunks {
		r := []rune(c)
		if i > 0 {
			r = r[3:]
		}
		b.WriteString(string(r))
	}
	if b.String() != text {
		t.Error("reconstruction differs")
	}
}

func TestChunkTextMixedWidthRoundTrip(t *testing.T) {
	text := Clean(strings.Repeat("Das Portfolio wuchs über 12%. 収益は増加した。 ", 8))
	chunks, err := ChunkText(text, 40, 6)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is invalid UTF-8: %q", i, c)
		}
		r := []rune(c)
		if i > 0 {
			r = r[6:]
		}
		b.WriteString(string(r))
	}
	if b.String() != text {
		t.Error("reconstruction differs")
	}
}

func TestChunkTextDeterministic(t *testing.T) {
	text := Clean(strings.Repeat("Assets under management rose. Fees were flat at 1.2%. ", 10))
	a, _ := ChunkText(text, 90, 15)
	b, _ := ChunkText(text, 90, 15)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("chunk %d differs", i)
		}
	}
}

func TestChunkTextInvalidConfig(t *testing.T) {
	cases := []struct{ size, overlap int }{
		{0, 0}, {-1, 0}, {5, 5}, {5, 6}, {5, -1},
	}
	for _, c := range cases {
		_, err := ChunkText("abc", c.size, c.overlap)
		var cfgErr *ErrConfiguration
		if !errors.As(err, &cfgErr) {
			t.Errorf("size=%d overlap=%d: got %v, want ErrConfiguration", c.size, c.overlap, err)
		}
	}
}

func TestValidateChunkingOK(t *testing.T) {
	if err := ValidateChunking(512, 50); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateChunking(10, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// --- sentence boundary detection ---

func TestSentenceBoundariesSkipAbbreviations(t *testing.T) {
	runes := []rune("Mr. Smith met Dr. Jones. They talked.")
	b := sentenceBoundaries(runes)
	for _, pos := range b {
		head := string(runes[:pos])
		if strings.HasSuffix(head, "Mr.") || strings.HasSuffix(head, "Dr.") {
			t.Errorf("boundary after abbreviation at %d", pos)
		}
	}
	if len(b) != 2 {
		t.Errorf("got %d boundaries %v, want 2", len(b), b)
	}
}

func TestSentenceBoundariesSkipDecimals(t *testing.T) {
	b := sentenceBoundaries([]rune("Margin was 3.14 percent. Costs were $1.50 each."))
	if len(b) != 2 {
		t.Errorf("got boundaries %v, want 2", b)
	}
	if len(b) > 0 && b[0] != len("Margin was 3.14 percent.") {
		t.Errorf("first boundary at %d", b[0])
	}
}

func TestSentenceBoundariesRequireUppercaseFollow(t *testing.T) {
	// "etc. and" does not start a new sentence.
	b := sentenceBoundaries([]rune("numbers, letters, symbols. and more"))
	if len(b) != 0 {
		t.Errorf("got boundaries %v, want none", b)
	}
}

func TestSentenceBoundariesCJK(t *testing.T) {
	b := sentenceBoundaries([]rune("第一文。第二文。"))
	if len(b) != 2 {
		t.Errorf("got %d boundaries, want 2", len(b))
	}
}
