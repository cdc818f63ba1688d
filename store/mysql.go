package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// MySQLStore 基于 kv_store 表的存储，表结构由 config 中的迁移创建
type MySQLStore struct {
	db *sqlx.DB
}

type kvRow struct {
	Value     string       `db:"v"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

// NewMySQLStore 使用已连接的数据库创建存储
func NewMySQLStore(db *sqlx.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Get(ctx context.Context, key string) (string, error) {
	var row kvRow
	err := s.db.GetContext(ctx, &row, "SELECT v, expires_at FROM kv_store WHERE k = ?", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}

	if row.ExpiresAt.Valid && !time.Now().Before(row.ExpiresAt.Time) {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE k = ? AND expires_at <= ?", key, time.Now()); err != nil {
			return "", fmt.Errorf("failed to purge expired key %s: %w", key, err)
		}
		return "", ErrNotFound
	}
	return row.Value, nil
}

func (s *MySQLStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: time.Now().Add(ttl), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (k, v, expires_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v), expires_at = VALUES(expires_at)
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE k = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
