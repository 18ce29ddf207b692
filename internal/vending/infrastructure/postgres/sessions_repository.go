package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
)

const (
	sessionIDAttempts = 3
	sessionIDBackoff  = time.Millisecond
)

type SessionsRepository struct {
	querier database.QueryExecuter
	newID   func() string
}

func NewSessionsRepository(querier database.QueryExecuter) *SessionsRepository {
	return &SessionsRepository{
		querier: querier,
		newID:   uuid.NewString,
	}
}

// CreateSession stores a fresh session for the user, drawing a new id when
// the previous one collides with an existing session.
func (r *SessionsRepository) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	insertSQL := `INSERT INTO sessions (session_id, user_id) VALUES ($1, $2)`

	var sessionID string
	backoff := retry.WithMaxRetries(sessionIDAttempts-1, retry.NewConstant(sessionIDBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		sessionID = r.newID()

		_, err := r.querier.Exec(ctx, insertSQL, sessionID, userID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionID, nil
}

func (r *SessionsRepository) IsActive(ctx context.Context, sessionID string) (bool, error) {
	existsSQL := `SELECT 1 FROM sessions WHERE session_id = $1`

	var one int
	err := r.querier.QueryRow(ctx, existsSQL, sessionID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check session: %w", err)
	}

	return true, nil
}

func (r *SessionsRepository) Revoke(ctx context.Context, sessionID string) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (r *SessionsRepository) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return nil
}
