// Package filingest extracts, cleans, and chunks text from PDF documents
// (notably financial filings) for RAG ingestion pipelines.
//
// Its responsibility ends at producing cleaned, bounded text chunks suitable
// for embedding. Embedding, indexing, retrieval, and generation are external
// collaborators.
//
// # Quick Start
//
//	pre, err := filingest.New(
//		filingest.WithChunkSize(512),
//		filingest.WithOverlap(50),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := pre.Process(ctx, "10-K.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range result.Chunks {
//		embed(c.Text) // downstream, out of scope
//	}
//
// # Pipeline
//
// Process runs three stages in order:
//
//   - extraction: an ordered chain of PDF text-extraction strategies tried
//     until one yields non-empty text (see the extract subpackage)
//   - cleaning: [Clean] normalizes whitespace and punctuation and strips
//     page-number boilerplate
//   - chunking: [ChunkText] splits the cleaned text into overlapping
//     bounded chunks, preferring sentence and word boundaries over hard cuts
//
// Cleaning and chunking are pure; extraction reads the file and emits
// diagnostic log lines. Everything is synchronous and deterministic.
package filingest
