package main

import (
	"fmt"

	"github.com/mr-devs/querymode"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	var history []*querymode.Turn
	conversationID := c.Continue
	if conversationID != "" {
		conversation, err := deps.Conversations.FindConversationByID(deps.Ctx, conversationID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
			return err
		}
		history = conversation.Turns
	}

	answer, err := deps.Generator.Generate(deps.Ctx, c.Question, history)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	style := querymode.MarkerStyle{Prefix: c.Prefix, Suffix: c.Suffix, Separator: c.Separator}
	result, err := querymode.Annotate(answer.Text, answer.Supports, answer.Chunks, style)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Text)
	if len(result.Sources) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Sources:")
		fmt.Fprintln(deps.Stdout, querymode.FormatSources(result.Sources))
	}

	if deps.Conversations == nil {
		return nil
	}
	if err := c.persist(deps, conversationID, answer.Text); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}
	return nil
}

// persist stores the exchange so the conversation can be continued.
// The model turn keeps the raw, unannotated text since that is what
// gets replayed as generation history.
func (c *AskCmd) persist(deps *Dependencies, conversationID, answerText string) error {
	if conversationID == "" {
		conversation := &querymode.Conversation{Question: c.Question}
		if err := deps.Conversations.CreateConversation(deps.Ctx, conversation); err != nil {
			return err
		}
		conversationID = conversation.ID
		fmt.Fprintf(deps.Stdout, "\nSaved as conversation %s. Continue with 'querymode ask -c %s ...'\n", conversationID, conversationID)
	}

	userTurn := &querymode.Turn{ConversationID: conversationID, Role: querymode.RoleUser, Text: c.Question}
	if err := deps.Conversations.AddTurn(deps.Ctx, userTurn); err != nil {
		return err
	}

	modelTurn := &querymode.Turn{ConversationID: conversationID, Role: querymode.RoleModel, Text: answerText}
	return deps.Conversations.AddTurn(deps.Ctx, modelTurn)
}
