// Package gemini implements grounded generation using the Google
// Gemini API with the Google Search grounding tool.
package gemini

import (
	"context"

	"github.com/mr-devs/querymode"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Ensure Generator implements querymode.Generator at compile time.
var _ querymode.Generator = (*Generator)(nil)

// Generator implements querymode.Generator using Gemini. Every call
// runs with the Google Search tool enabled so the response carries
// grounding metadata.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate answers a question grounded in Google Search results,
// optionally continuing from earlier conversation turns.
func (g *Generator) Generate(ctx context.Context, question string, history []*querymode.Turn) (*querymode.GroundedAnswer, error) {
	if question == "" {
		return nil, querymode.Errorf(querymode.EINVALID, "question required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, BuildContents(history, question), BuildConfig())
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, querymode.Errorf(querymode.EINTERNAL, "gemini returned no candidates")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, querymode.Errorf(querymode.EINTERNAL, "gemini returned empty content")
	}

	answer := &querymode.GroundedAnswer{Text: candidate.Content.Parts[0].Text}
	answer.Supports, answer.Chunks = MapGroundingMetadata(candidate.GroundingMetadata)
	return answer, nil
}

// BuildConfig returns the GenerateContentConfig for grounded calls.
func BuildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}

// BuildContents converts stored conversation turns plus the current
// question into the content list for the API call.
func BuildContents(history []*querymode.Turn, question string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == querymode.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))
	return contents
}

// MapGroundingMetadata converts genai grounding metadata into domain
// supports and chunks. Chunk indices are list positions, which is how
// supports reference chunks in the API. Supports without a segment are
// dropped since they cannot be placed in the text.
func MapGroundingMetadata(md *genai.GroundingMetadata) ([]querymode.GroundingSupport, []querymode.GroundingChunk) {
	if md == nil {
		return nil, nil
	}

	chunks := make([]querymode.GroundingChunk, 0, len(md.GroundingChunks))
	for i, gc := range md.GroundingChunks {
		chunk := querymode.GroundingChunk{Index: i}
		if gc != nil && gc.Web != nil {
			chunk.Title = gc.Web.Title
			chunk.URI = gc.Web.URI
		}
		chunks = append(chunks, chunk)
	}

	supports := make([]querymode.GroundingSupport, 0, len(md.GroundingSupports))
	for _, gs := range md.GroundingSupports {
		if gs == nil || gs.Segment == nil {
			continue
		}
		support := querymode.GroundingSupport{
			StartIndex: int(gs.Segment.StartIndex),
			EndIndex:   int(gs.Segment.EndIndex),
		}
		for _, ci := range gs.GroundingChunkIndices {
			support.ChunkIndices = append(support.ChunkIndices, int(ci))
		}
		for _, score := range gs.ConfidenceScores {
			support.ConfidenceScores = append(support.ConfidenceScores, float64(score))
		}
		supports = append(supports, support)
	}

	return supports, chunks
}

// ValidateKey verifies the API key by listing available models, the
// cheapest call that requires authentication.
func ValidateKey(ctx context.Context, client *genai.Client) error {
	if _, err := client.Models.List(ctx, &genai.ListModelsConfig{}); err != nil {
		return querymode.Errorf(querymode.EINVALID, "gemini rejected the API key: %v", err)
	}
	return nil
}
