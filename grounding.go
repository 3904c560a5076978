package querymode

import "context"

// GroundingChunk represents one candidate source document returned by
// the grounded generation backend. Index is the ordinal assigned
// upstream; supports reference chunks by it and it is never reassigned
// here. Title and URI may each be empty.
type GroundingChunk struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundingSupport ties one claim in the generated text to the chunks
// that back it. StartIndex and EndIndex are byte offsets into the
// original text forming the half-open range [StartIndex, EndIndex).
//
// ConfidenceScores parallels ChunkIndices when present. The annotation
// algorithm ignores it; it is carried through for presentation layers
// that want it.
type GroundingSupport struct {
	StartIndex       int       `json:"startIndex"`
	EndIndex         int       `json:"endIndex"`
	ChunkIndices     []int     `json:"chunkIndices"`
	ConfidenceScores []float64 `json:"confidenceScores,omitempty"`
}

// GroundedAnswer is the raw output of one grounded generation call,
// before citation markers are inserted.
type GroundedAnswer struct {
	Text     string             `json:"text"`
	Supports []GroundingSupport `json:"supports,omitempty"`
	Chunks   []GroundingChunk   `json:"chunks,omitempty"`
}

// Generator produces answers grounded in web search results.
type Generator interface {
	// Generate answers a question, optionally continuing from earlier
	// conversation turns. The returned answer carries the grounding
	// metadata needed by Annotate.
	Generate(ctx context.Context, question string, history []*Turn) (*GroundedAnswer, error)
}
