package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devshowcase/internal/dbx"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// DB is what the repository needs from *sql.DB.
type DB interface {
	dbx.DBTX
	dbx.TxBeginner
}

type SQLiteRepository struct {
	db DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func setUser(ctx context.Context, db dbx.DBTX, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return set(ctx, db, keyUser, string(data))
}

func (r *SQLiteRepository) Load(ctx context.Context) (Snapshot, error) {
	token, ok, err := get(ctx, r.db, keyToken)
	if err != nil || !ok {
		return Snapshot{}, err
	}

	snap := Snapshot{Token: token}

	raw, ok, err := get(ctx, r.db, keyUser)
	if err != nil {
		return Snapshot{}, err
	}
	if ok {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return Snapshot{}, fmt.Errorf("failed to decode stored user: %w", err)
		}
		snap.User = &u
	}
	return snap, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token string, user models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return setUser(ctx, tx, user)
	})
}

func (r *SQLiteRepository) SaveUser(ctx context.Context, user models.User) error {
	return setUser(ctx, r.db, user)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
