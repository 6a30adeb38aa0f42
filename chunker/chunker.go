// Package chunker splits raw document text into overlapping word-bounded
// segments used as the unit of retrieval.
package chunker

import "strings"

// DefaultChunkSize is the number of words per chunk used for chat indexing.
const DefaultChunkSize = 500

// DefaultOverlap is the number of words shared with the preceding chunk.
const DefaultOverlap = 50

// Split slices text into chunks of at most size words, each sharing overlap
// words with the previous chunk. The window advances in steps of
// size-overlap, so the union of chunks minus the overlaps reconstructs the
// original word order. The final chunk may be shorter than size. Empty input
// yields no chunks.
//
// Requires 0 < overlap < size; out-of-range values are clamped.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 10
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	step := size - overlap
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
