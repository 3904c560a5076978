package querymode

import (
	"context"
	"time"
)

// Turn roles. The generation backend only understands these two.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one half of a conversation exchange: a user question or a
// model answer. Text holds the raw, unannotated text so it can be
// replayed verbatim as generation history.
type Turn struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Text           string    `json:"text"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate returns an error if the turn contains invalid fields.
func (t *Turn) Validate() error {
	if t.ConversationID == "" {
		return Errorf(EINVALID, "turn conversation ID required")
	}
	if t.Role != RoleUser && t.Role != RoleModel {
		return Errorf(EINVALID, "turn role must be %q or %q", RoleUser, RoleModel)
	}
	if t.Text == "" {
		return Errorf(EINVALID, "turn text required")
	}
	return nil
}

// Conversation groups the turns of one conversational search session.
type Conversation struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"` // first question, shown in listings
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Turns is populated by FindConversationByID, oldest first.
	Turns []*Turn `json:"turns,omitempty"`
}

// Validate returns an error if the conversation contains invalid fields.
func (c *Conversation) Validate() error {
	if c.Question == "" {
		return Errorf(EINVALID, "conversation question required")
	}
	return nil
}

// ConversationFilter represents a filter for FindConversations.
type ConversationFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ConversationService manages stored conversations so a grounded search
// can be continued later.
type ConversationService interface {
	// CreateConversation creates a new conversation.
	CreateConversation(ctx context.Context, conversation *Conversation) error

	// FindConversationByID retrieves a conversation with its turns.
	// Returns ENOTFOUND if the conversation does not exist.
	FindConversationByID(ctx context.Context, id string) (*Conversation, error)

	// FindConversations retrieves conversations matching the filter,
	// most recently updated first. Turns are not loaded.
	FindConversations(ctx context.Context, filter ConversationFilter) ([]*Conversation, error)

	// AddTurn appends a turn to a conversation. Returns ENOTFOUND if
	// the conversation does not exist.
	AddTurn(ctx context.Context, turn *Turn) error

	// DeleteConversation permanently removes a conversation and its
	// turns. Returns ENOTFOUND if the conversation does not exist.
	DeleteConversation(ctx context.Context, id string) error
}
