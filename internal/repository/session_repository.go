package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ngoportal/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, userID int, ttl time.Duration) (*models.Session, error) {
	session := &models.Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	query := `
		INSERT INTO sessions (session_id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING *
	`

	err := r.db.GetContext(ctx, session, query, session.SessionID, session.UserID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetUser resolves a session id to its user. Expiry is checked in SQL so
// an expired record behaves exactly like a missing one.
func (r *sessionRepository) GetUser(ctx context.Context, sessionID string) (*models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN sessions s ON s.user_id = u.id
		WHERE s.session_id = $1
		AND s.expires_at > CURRENT_TIMESTAMP
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return &user, nil
}

// Delete is idempotent: removing a session that does not exist is fine.
func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM sessions WHERE session_id = $1`

	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= CURRENT_TIMESTAMP`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return result.RowsAffected()
}
