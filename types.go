package filingest

// Document is a single processed source file. Raw holds the extracted text
// exactly as the extraction chain produced it (possibly empty); Text holds
// the cleaned form. Documents are ephemeral: produced and returned per
// Process call, never persisted.
type Document struct {
	ID        string
	Source    string // filesystem path the document was read from
	Raw       string
	Text      string
	CreatedAt int64
}

// Chunk is a bounded-length segment of cleaned document text, the unit of
// downstream embedding. Overlap is the number of leading characters shared
// with the preceding chunk (0 for the first chunk). Stripping each chunk's
// leading Overlap characters and concatenating reconstructs Document.Text.
type Chunk struct {
	ID         string
	DocumentID string
	Index      int
	Text       string
	Overlap    int
}

// Stats summarizes a processed document.
type Stats struct {
	Chars     int // length of the cleaned text in characters (runes)
	Words     int // whitespace-delimited tokens in the cleaned text
	Stopwords int // of Words, how many are English stopwords
	Tokens    int // per the configured TokenCounter
	Chunks    int
}

// Result bundles the output of a Process call, ready for a downstream
// embedding/indexing stage.
type Result struct {
	Document Document
	Chunks   []Chunk
	Stats    Stats
}
