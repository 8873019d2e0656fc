// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/flappigotchi-server/db"
	"github.com/danielhkuo/flappigotchi-server/models"
)

// SQLBackend stores high scores in a PostgreSQL or SQLite table
type SQLBackend struct {
	db    *sql.DB
	table string
	qb    sq.StatementBuilderType
	now   func() time.Time
}

// NewSQLBackend wraps an open connection. The table must already exist
// (see db.CreateSchema).
func NewSQLBackend(conn *sql.DB, dialect, table string) *SQLBackend {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == db.DialectPostgres {
		format = sq.Dollar
	}

	return &SQLBackend{
		db:    conn,
		table: table,
		qb:    sq.StatementBuilder.PlaceholderFormat(format),
		now:   time.Now,
	}
}

func (b *SQLBackend) Get(ctx context.Context, tokenID string) (models.HighScore, bool, error) {
	query, args, err := b.qb.
		Select("token_id", "name", "score").
		From(b.table).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
	if err != nil {
		return models.HighScore{}, false, fmt.Errorf("building high score query: %w", err)
	}

	var hs models.HighScore
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&hs.TokenID, &hs.Name, &hs.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HighScore{}, false, nil
	}
	if err != nil {
		return models.HighScore{}, false, fmt.Errorf("querying high score: %w", err)
	}

	return hs, true, nil
}

func (b *SQLBackend) Set(ctx context.Context, hs models.HighScore) error {
	query, args, err := b.qb.
		Insert(b.table).
		Columns("token_id", "name", "score", "updated_at").
		Values(hs.TokenID, hs.Name, hs.Score, b.now().UTC()).
		Suffix("ON CONFLICT (token_id) DO UPDATE SET name = excluded.name, score = excluded.score, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building high score upsert: %w", err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting high score: %w", err)
	}

	return nil
}
