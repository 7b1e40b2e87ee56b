package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"local-llm/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(ctx context.Context, session *model.Session) error {
	query := "INSERT INTO sessions (id, selected_model, document_context, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.SelectedModel, session.DocumentContext, session.CreatedAt, session.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := "SELECT id, selected_model, document_context, created_at, updated_at FROM sessions WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var session model.Session
	err := row.Scan(&session.ID, &session.SelectedModel, &session.DocumentContext, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sqliteRepository) DeleteSession(ctx context.Context, sessionID string) error {
	// Turns go with the session via ON DELETE CASCADE.
	query := "DELETE FROM sessions WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sqliteRepository) UpdateSelectedModel(ctx context.Context, sessionID, modelName string) error {
	query := "UPDATE sessions SET selected_model = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, modelName, time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sqliteRepository) UpdateDocumentContext(ctx context.Context, sessionID, documentContext string) error {
	query := "UPDATE sessions SET document_context = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, documentContext, time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// AddTurn inserts a turn and bumps the session's updated_at inside one
// transaction, so a transcript row can never outrun its session metadata.
func (r *sqliteRepository) AddTurn(ctx context.Context, sessionID string, turn *model.Turn) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := "INSERT INTO turns (id, session_id, role, content, timestamp) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, insertQuery, turn.ID, sessionID, turn.Role, turn.Content, turn.Timestamp); err != nil {
		return fmt.Errorf("could not insert turn: %w", err)
	}

	updateQuery := "UPDATE sessions SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, time.Now().UTC(), sessionID); err != nil {
		return fmt.Errorf("could not update session timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	query := "SELECT id, role, content, timestamp FROM turns WHERE session_id = ? ORDER BY seq ASC"
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns := []model.Turn{}
	for rows.Next() {
		var turn model.Turn
		if err := rows.Scan(&turn.ID, &turn.Role, &turn.Content, &turn.Timestamp); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

func (r *sqliteRepository) ClearTurns(ctx context.Context, sessionID string) error {
	query := "DELETE FROM turns WHERE session_id = ?"
	_, err := r.db.ExecContext(ctx, query, sessionID)
	return err
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
