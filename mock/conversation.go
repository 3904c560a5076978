package mock

import (
	"context"

	"github.com/mr-devs/querymode"
)

var _ querymode.ConversationService = (*ConversationService)(nil)

// ConversationService is a mock implementation of querymode.ConversationService.
type ConversationService struct {
	CreateConversationFn   func(ctx context.Context, conversation *querymode.Conversation) error
	FindConversationByIDFn func(ctx context.Context, id string) (*querymode.Conversation, error)
	FindConversationsFn    func(ctx context.Context, filter querymode.ConversationFilter) ([]*querymode.Conversation, error)
	AddTurnFn              func(ctx context.Context, turn *querymode.Turn) error
	DeleteConversationFn   func(ctx context.Context, id string) error
}

func (s *ConversationService) CreateConversation(ctx context.Context, conversation *querymode.Conversation) error {
	return s.CreateConversationFn(ctx, conversation)
}

func (s *ConversationService) FindConversationByID(ctx context.Context, id string) (*querymode.Conversation, error) {
	return s.FindConversationByIDFn(ctx, id)
}

func (s *ConversationService) FindConversations(ctx context.Context, filter querymode.ConversationFilter) ([]*querymode.Conversation, error) {
	return s.FindConversationsFn(ctx, filter)
}

func (s *ConversationService) AddTurn(ctx context.Context, turn *querymode.Turn) error {
	return s.AddTurnFn(ctx, turn)
}

func (s *ConversationService) DeleteConversation(ctx context.Context, id string) error {
	return s.DeleteConversationFn(ctx, id)
}
