package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mr-devs/querymode"
	main "github.com/mr-devs/querymode/cmd/querymode"
	"github.com/mr-devs/querymode/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints annotated answer with sources", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			GenerateFn: func(_ context.Context, question string, history []*querymode.Turn) (*querymode.GroundedAnswer, error) {
				assert.Equal(t, "why is the sky blue?", question)
				assert.Empty(t, history)
				return &querymode.GroundedAnswer{
					Text: "Rayleigh scattering colors the sky.",
					Supports: []querymode.GroundingSupport{
						{StartIndex: 0, EndIndex: 35, ChunkIndices: []int{0}},
					},
					Chunks: []querymode.GroundingChunk{
						{Index: 0, Title: "atmosphere.example", URI: "https://atmosphere.example/why"},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Generator: generator,
		}

		cmd := &main.AskCmd{Question: "why is the sky blue?", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Rayleigh scattering colors the sky.[1]")
		assert.Contains(t, output, "Sources:")
		assert.Contains(t, output, "1. [atmosphere.example](https://atmosphere.example/why)")
		assert.Empty(t, stderr.String())
	})

	t.Run("omits sources section when nothing is cited", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			GenerateFn: func(_ context.Context, _ string, _ []*querymode.Turn) (*querymode.GroundedAnswer, error) {
				return &querymode.GroundedAnswer{Text: "No grounding here."}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Generator: generator,
		}

		cmd := &main.AskCmd{Question: "anything?", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No grounding here.")
		assert.NotContains(t, stdout.String(), "Sources:")
	})

	t.Run("persists new conversation with both turns", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			GenerateFn: func(_ context.Context, _ string, _ []*querymode.Turn) (*querymode.GroundedAnswer, error) {
				return &querymode.GroundedAnswer{Text: "an answer"}, nil
			},
		}

		var turns []*querymode.Turn
		conversations := &mock.ConversationService{
			CreateConversationFn: func(_ context.Context, conversation *querymode.Conversation) error {
				assert.Equal(t, "a question?", conversation.Question)
				conversation.ID = "conv-1"
				return nil
			},
			AddTurnFn: func(_ context.Context, turn *querymode.Turn) error {
				turns = append(turns, turn)
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        stdout,
			Stderr:        &bytes.Buffer{},
			Generator:     generator,
			Conversations: conversations,
		}

		cmd := &main.AskCmd{Question: "a question?", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved as conversation conv-1")

		require.Len(t, turns, 2)
		assert.Equal(t, querymode.RoleUser, turns[0].Role)
		assert.Equal(t, "a question?", turns[0].Text)
		assert.Equal(t, "conv-1", turns[0].ConversationID)
		assert.Equal(t, querymode.RoleModel, turns[1].Role)
		assert.Equal(t, "an answer", turns[1].Text)
	})

	t.Run("continues an existing conversation with its history", func(t *testing.T) {
		t.Parallel()

		history := []*querymode.Turn{
			{Role: querymode.RoleUser, Text: "first question?"},
			{Role: querymode.RoleModel, Text: "first answer"},
		}

		conversations := &mock.ConversationService{
			FindConversationByIDFn: func(_ context.Context, id string) (*querymode.Conversation, error) {
				assert.Equal(t, "conv-1", id)
				return &querymode.Conversation{ID: "conv-1", Question: "first question?", Turns: history}, nil
			},
			AddTurnFn: func(_ context.Context, turn *querymode.Turn) error {
				assert.Equal(t, "conv-1", turn.ConversationID)
				return nil
			},
		}

		generator := &mock.Generator{
			GenerateFn: func(_ context.Context, _ string, got []*querymode.Turn) (*querymode.GroundedAnswer, error) {
				assert.Equal(t, history, got)
				return &querymode.GroundedAnswer{Text: "a followup answer"}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        stdout,
			Stderr:        &bytes.Buffer{},
			Generator:     generator,
			Conversations: conversations,
		}

		cmd := &main.AskCmd{Question: "and then?", Continue: "conv-1", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "a followup answer")
		// Continuing never announces a new conversation.
		assert.NotContains(t, stdout.String(), "Saved as conversation")
	})

	t.Run("reports unknown conversation on stderr", func(t *testing.T) {
		t.Parallel()

		conversations := &mock.ConversationService{
			FindConversationByIDFn: func(_ context.Context, _ string) (*querymode.Conversation, error) {
				return nil, querymode.Errorf(querymode.ENOTFOUND, "conversation not found")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        &bytes.Buffer{},
			Stderr:        stderr,
			Generator:     &mock.Generator{},
			Conversations: conversations,
		}

		cmd := &main.AskCmd{Question: "and then?", Continue: "missing", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, querymode.ENOTFOUND, querymode.ErrorCode(err))
		assert.Contains(t, stderr.String(), "conversation not found")
	})

	t.Run("reports generation failure on stderr", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			GenerateFn: func(_ context.Context, _ string, _ []*querymode.Turn) (*querymode.GroundedAnswer, error) {
				return nil, querymode.Errorf(querymode.EUNAVAILABLE, "generation service unavailable")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Generator: generator,
		}

		cmd := &main.AskCmd{Question: "anything?", Prefix: "[", Suffix: "]", Separator: ","}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "generation service unavailable")
	})
}
