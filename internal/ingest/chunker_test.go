package ingest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestChunkText_SentenceBoundaries(t *testing.T) {
	text := "Sentence one. Sentence two. Sentence three."

	got := ChunkText(text, 15, 3)
	want := []string{
		"Sentence one.",
		"e. Sentence two",
		"two. Sentence t",
		"e three.",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChunkText() = %q, want %q", got, want)
	}
}

func TestChunkText_ShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "shorter than max size",
			text: "A single short sentence.",
			want: []string{"A single short sentence."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkText(tt.text, 1000, 50)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChunkText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestChunkText_BoundsAndProgress(t *testing.T) {
	// Long text with regular sentence boundaries; sentences are unique so
	// each chunk's position in the source can be recovered unambiguously.
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "Sentence number %d talks about topic %d in some detail. ", i, i*7)
	}
	text := strings.TrimSpace(sb.String())

	const (
		maxSize = 1000
		overlap = 50
	)

	chunks := ChunkText(text, maxSize, overlap)
	if len(chunks) == 0 {
		t.Fatal("ChunkText() returned no chunks")
	}

	// Every chunk respects the size bound
	for i, chunk := range chunks {
		if len(chunk) > maxSize {
			t.Errorf("chunk %d length = %d, want <= %d", i, len(chunk), maxSize)
		}
		if strings.TrimSpace(chunk) != chunk {
			t.Errorf("chunk %d not trimmed: %q", i, chunk)
		}
	}

	// Consecutive chunks overlap and make forward progress
	prevStart := -1
	prevEnd := -1
	for i, chunk := range chunks {
		start := strings.Index(text, chunk)
		if start < 0 {
			t.Fatalf("chunk %d not found in source text", i)
		}
		end := start + len(chunk)
		if i > 0 {
			if start > prevEnd {
				t.Errorf("chunk %d start %d leaves a gap after previous end %d", i, start, prevEnd)
			}
			if start <= prevStart {
				t.Errorf("chunk %d start %d did not advance past previous start %d", i, start, prevStart)
			}
		}
		prevStart = start
		prevEnd = end
	}

	// Full coverage: last chunk reaches the end of the text
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Error("last chunk does not reach the end of the text")
	}
}

func TestChunkText_NoBoundaryInWindow(t *testing.T) {
	// No sentence-terminal punctuation anywhere; chunks are hard cuts
	text := strings.Repeat("abcdefghij", 30)

	chunks := ChunkText(text, 100, 10)
	if len(chunks) < 3 {
		t.Fatalf("ChunkText() returned %d chunks, want >= 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d length = %d, want <= 100", i, len(chunk))
		}
	}
}
