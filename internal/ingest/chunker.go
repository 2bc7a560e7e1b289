package ingest

import (
	"log/slog"
	"regexp"
	"strings"
)

// sentenceBoundary matches sentence-terminal punctuation followed by
// whitespace. Chunk ends snap back to the last such boundary inside the
// search window so chunks avoid cutting mid-sentence.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// ChunkText splits text into overlapping chunks of at most maxSize
// characters. Each chunk's tentative end is pulled back to the last sentence
// boundary found within the final 20% of the window, when one exists. The
// next chunk starts overlap characters before the previous chunk's end.
// Chunks are trimmed; empty chunks are dropped. Pure function, no I/O.
func ChunkText(text string, maxSize, overlap int) []string {
	const maxIterations = 10000

	var chunks []string
	start := 0
	iterations := 0

	for start < len(text) && iterations < maxIterations {
		end := min(start+maxSize, len(text))

		// Try to end on a sentence boundary
		if end < len(text) {
			searchStart := max(end-maxSize/5, start)
			matches := sentenceBoundary.FindAllStringIndex(text[searchStart:end], -1)
			if len(matches) > 0 {
				last := matches[len(matches)-1]
				end = searchStart + last[1]
			}
		}

		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Done, or unable to advance on pathological input
		if end >= len(text) || end <= start {
			break
		}

		start = max(0, end-overlap)
		iterations++
	}

	if iterations == maxIterations {
		slog.Warn("chunk iteration cap reached", "text_length", len(text), "chunks", len(chunks))
	}

	return chunks
}
