package main

import (
	"fmt"

	"github.com/mr-devs/querymode"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID == "" {
		return c.list(deps)
	}
	return c.show(deps)
}

func (c *HistoryCmd) list(deps *Dependencies) error {
	conversations, err := deps.Conversations.FindConversations(deps.Ctx, querymode.ConversationFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	if len(conversations) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversations found. Use 'querymode ask' to start one.")
		return nil
	}

	for _, conversation := range conversations {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
			conversation.ID,
			conversation.UpdatedAt.Format("2006-01-02 15:04"),
			conversation.Question)
	}
	return nil
}

func (c *HistoryCmd) show(deps *Dependencies) error {
	conversation, err := deps.Conversations.FindConversationByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Conversation %s (started %s)\n",
		conversation.ID, conversation.CreatedAt.Format("2006-01-02 15:04"))
	for _, turn := range conversation.Turns {
		fmt.Fprintf(deps.Stdout, "\n[%s]\n%s\n", turn.Role, turn.Text)
	}
	return nil
}
