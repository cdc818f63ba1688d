// Package store 提供简单的键值存储抽象，用于保存会话、最近一次提交的表单和页面状态。
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound 键不存在或已过期
var ErrNotFound = errors.New("store: key not found")

// Store 键值存储接口，ttl 为 0 表示永不过期
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// 键前缀
const (
	SessionPrefix  = "session:"
	LastSoilPrefix = "soil:last:"
	ShellPrefix    = "shell:"
)

// SessionKey 会话键
func SessionKey(id string) string {
	return SessionPrefix + id
}

// LastSoilKey 用户最近一次土壤表单
func LastSoilKey(username string) string {
	return LastSoilPrefix + username
}

// ShellKey 用户页面外壳状态
func ShellKey(username string) string {
	return ShellPrefix + username
}
