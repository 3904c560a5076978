package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mr-devs/querymode"
)

// Compile-time interface verification.
var _ querymode.ConversationService = (*ConversationService)(nil)

// timeLayout is RFC 3339 with fixed-width fractional seconds, so the
// stored strings sort lexicographically in chronological order and
// ORDER BY updated_at stays correct. time.Parse with time.RFC3339
// reads the fraction back without a matching layout.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ConversationService implements querymode.ConversationService using SQLite.
type ConversationService struct {
	db *DB
}

// NewConversationService creates a new ConversationService.
func NewConversationService(db *DB) *ConversationService {
	return &ConversationService{db: db}
}

// CreateConversation creates a new conversation.
func (s *ConversationService) CreateConversation(ctx context.Context, conversation *querymode.Conversation) error {
	if err := conversation.Validate(); err != nil {
		return err
	}

	conversation.ID = uuid.New().String()
	now := time.Now().UTC()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, question, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, conversation.ID, conversation.Question,
		conversation.CreatedAt.Format(timeLayout), conversation.UpdatedAt.Format(timeLayout))

	return err
}

// FindConversationByID retrieves a conversation with its turns.
func (s *ConversationService) FindConversationByID(ctx context.Context, id string) (*querymode.Conversation, error) {
	var conversation querymode.Conversation
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, created_at, updated_at
		FROM conversations
		WHERE id = ?
	`, id).Scan(&conversation.ID, &conversation.Question, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, querymode.Errorf(querymode.ENOTFOUND, "conversation not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	conversation.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}
	conversation.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", parseErr)
	}

	conversation.Turns, err = s.findTurns(ctx, conversation.ID)
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// FindConversations retrieves conversations matching the filter, most
// recently updated first. Turns are not loaded.
func (s *ConversationService) FindConversations(ctx context.Context, filter querymode.ConversationFilter) ([]*querymode.Conversation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, question, created_at, updated_at FROM conversations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY updated_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*querymode.Conversation
	for rows.Next() {
		var conversation querymode.Conversation
		var createdAt, updatedAt string

		if err := rows.Scan(&conversation.ID, &conversation.Question, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		var parseErr error
		conversation.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
		}
		conversation.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", parseErr)
		}

		conversations = append(conversations, &conversation)
	}
	return conversations, rows.Err()
}

// AddTurn appends a turn to a conversation and bumps the
// conversation's updated_at.
func (s *ConversationService) AddTurn(ctx context.Context, turn *querymode.Turn) error {
	if err := turn.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM conversations WHERE id = ?
	`, turn.ConversationID).Scan(&exists)
	if err == sql.ErrNoRows {
		return querymode.Errorf(querymode.ENOTFOUND, "conversation not found")
	}
	if err != nil {
		return err
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0) FROM turns WHERE conversation_id = ?
	`, turn.ConversationID).Scan(&turn.Position); err != nil {
		return err
	}

	turn.ID = uuid.New().String()
	turn.CreatedAt = time.Now().UTC()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO turns (id, conversation_id, role, text, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, turn.ID, turn.ConversationID, turn.Role, turn.Text, turn.Position,
		turn.CreatedAt.Format(timeLayout)); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE conversations SET updated_at = ? WHERE id = ?
	`, turn.CreatedAt.Format(timeLayout), turn.ConversationID)
	return err
}

// DeleteConversation permanently removes a conversation and its turns.
func (s *ConversationService) DeleteConversation(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM conversations WHERE id = ?
	`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return querymode.Errorf(querymode.ENOTFOUND, "conversation not found")
	}
	return nil
}

// findTurns loads a conversation's turns, oldest first.
func (s *ConversationService) findTurns(ctx context.Context, conversationID string) ([]*querymode.Turn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, role, text, position, created_at
		FROM turns
		WHERE conversation_id = ?
		ORDER BY position ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []*querymode.Turn
	for rows.Next() {
		var turn querymode.Turn
		var createdAt string

		if err := rows.Scan(&turn.ID, &turn.ConversationID, &turn.Role, &turn.Text, &turn.Position, &createdAt); err != nil {
			return nil, err
		}

		var parseErr error
		turn.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
		}

		turns = append(turns, &turn)
	}
	return turns, rows.Err()
}
