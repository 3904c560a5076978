package main

import (
	"fmt"

	"github.com/mr-devs/querymode"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Conversations.DeleteConversation(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted conversation %s.\n", c.ID)
	return nil
}
