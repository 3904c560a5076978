package querymode

import (
	"sort"
	"strconv"
	"strings"
)

// MarkerStyle controls how citation markers are rendered in the
// annotated text. A support citing display numbers 1 and 2 renders as
// Prefix + "1" + Separator + "2" + Suffix.
type MarkerStyle struct {
	Prefix    string
	Suffix    string
	Separator string
}

// DefaultMarkerStyle renders markers like [1] and [1,2].
var DefaultMarkerStyle = MarkerStyle{Prefix: "[", Suffix: "]", Separator: ","}

// normalize replaces the zero value with DefaultMarkerStyle so callers
// can pass MarkerStyle{} and get sensible output.
func (s MarkerStyle) normalize() MarkerStyle {
	if s == (MarkerStyle{}) {
		return DefaultMarkerStyle
	}
	return s
}

// Source is one entry in the reference list that follows an annotated
// answer. Number is the 1-based display number, assigned in
// first-reference order, distinct from the upstream chunk index.
type Source struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	URI    string `json:"uri"`
}

// AnnotationResult is the output of Annotate: the original text with
// citation markers inserted (original characters are never reordered
// or deleted) and the cited sources in display-number order.
type AnnotationResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Annotate inserts a citation marker after each supported span of text
// and returns the deduplicated sources in the order they were first
// cited.
//
// Malformed supports (empty chunk list, offsets outside [0, len(text)],
// or inverted offsets) are silently skipped, as are references to chunk
// indices absent from chunks. Empty or nil inputs are a no-op. The only
// error condition is an internal invariant violation, reported with
// code EINTERNAL.
func Annotate(text string, supports []GroundingSupport, chunks []GroundingChunk, style MarkerStyle) (*AnnotationResult, error) {
	style = style.normalize()

	known := make(map[int]GroundingChunk, len(chunks))
	for _, c := range chunks {
		known[c.Index] = c
	}

	// Drop malformed supports, remembering each survivor's original
	// sequence position for tie-breaking later.
	type ordered struct {
		pos     int
		support GroundingSupport
	}
	valid := make([]ordered, 0, len(supports))
	for i, s := range supports {
		if len(s.ChunkIndices) == 0 {
			continue
		}
		if s.StartIndex < 0 || s.EndIndex > len(text) || s.StartIndex > s.EndIndex {
			continue
		}
		valid = append(valid, ordered{pos: i, support: s})
	}
	if len(valid) == 0 || len(known) == 0 {
		return &AnnotationResult{Text: text}, nil
	}

	// First pass: assign display numbers by scanning supports in
	// ascending EndIndex order and numbering each distinct chunk as it
	// is first cited. Numbering is independent of the splice order
	// below, so readers see [1] before [2].
	numbering := make([]ordered, len(valid))
	copy(numbering, valid)
	sort.SliceStable(numbering, func(i, j int) bool {
		return numbering[i].support.EndIndex < numbering[j].support.EndIndex
	})

	displayNumbers := make(map[int]int)
	var sources []Source
	for _, o := range numbering {
		for _, ci := range o.support.ChunkIndices {
			chunk, ok := known[ci]
			if !ok {
				// Dangling reference, dropped.
				continue
			}
			if _, seen := displayNumbers[ci]; seen {
				continue
			}
			n := len(sources) + 1
			displayNumbers[ci] = n
			sources = append(sources, Source{Number: n, Title: chunk.Title, URI: chunk.URI})
		}
	}
	if len(sources) == 0 {
		return &AnnotationResult{Text: text}, nil
	}

	// Second pass: splice markers into the text by descending EndIndex
	// so an insertion never shifts the offset of a support still to be
	// processed. At equal EndIndex, later-sequence supports are spliced
	// first, which leaves earlier-sequence markers leftmost.
	splicing := valid
	sort.SliceStable(splicing, func(i, j int) bool {
		if splicing[i].support.EndIndex != splicing[j].support.EndIndex {
			return splicing[i].support.EndIndex > splicing[j].support.EndIndex
		}
		return splicing[i].pos > splicing[j].pos
	})

	annotated := []byte(text)
	var inserted int
	for _, o := range splicing {
		marker := formatMarker(o.support.ChunkIndices, displayNumbers, style)
		if marker == "" {
			continue
		}
		at := o.support.EndIndex
		annotated = append(annotated[:at], append([]byte(marker), annotated[at:]...)...)
		inserted += len(marker)
	}

	if len(annotated) != len(text)+inserted {
		return nil, Errorf(EINTERNAL, "annotated text is %d bytes, want %d", len(annotated), len(text)+inserted)
	}

	return &AnnotationResult{Text: string(annotated), Sources: sources}, nil
}

// formatMarker renders the citation marker for one support. Chunk
// indices are deduplicated, dangling references dropped, and display
// numbers listed in first-seen-overall order rather than the order the
// support happens to list them. Returns "" when every reference
// dangles.
func formatMarker(chunkIndices []int, displayNumbers map[int]int, style MarkerStyle) string {
	nums := make([]int, 0, len(chunkIndices))
	seen := make(map[int]bool, len(chunkIndices))
	for _, ci := range chunkIndices {
		n, ok := displayNumbers[ci]
		if !ok || seen[ci] {
			continue
		}
		seen[ci] = true
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return ""
	}
	sort.Ints(nums)

	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return style.Prefix + strings.Join(parts, style.Separator) + style.Suffix
}
