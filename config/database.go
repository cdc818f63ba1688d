package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DSN 根据配置生成 MySQL 连接串
func (c MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Host
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// OpenDB 连接数据库并检查连通性
func OpenDB(ctx context.Context, c MySQLConfig, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connected", zap.String("host", c.Host), zap.String("db", c.DBName))
	return db, nil
}

// Migration 迁移结构
type Migration struct {
	Name string
	SQL  string
}

// Migrations 获取所有迁移
func Migrations() []Migration {
	return []Migration{
		{
			Name: "001_create_kv_store_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS kv_store (
				k VARCHAR(255) NOT NULL PRIMARY KEY,
				v LONGTEXT NOT NULL,
				expires_at DATETIME NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_expires_at (expires_at)
			)
			`,
		},
	}
}

// AutoMigrate 自动迁移数据库
func AutoMigrate(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	// 创建 migrations 表用于跟踪迁移状态
	if err := createMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, migration := range Migrations() {
		if err := runMigrationIfNotExists(ctx, db, migration, logger); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Name, err)
		}
	}
	return nil
}

// createMigrationsTable 创建迁移表
func createMigrationsTable(ctx context.Context, db *sqlx.DB) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	_, err := db.ExecContext(ctx, createSQL)
	return err
}

// runMigrationIfNotExists 如果迁移不存在则运行
func runMigrationIfNotExists(ctx context.Context, db *sqlx.DB, migration Migration, logger *zap.Logger) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name); err != nil {
		return err
	}

	if count > 0 {
		logger.Debug("migration already executed, skipping", zap.String("migration", migration.Name))
		return nil
	}

	logger.Info("running migration", zap.String("migration", migration.Name))
	if _, err := db.ExecContext(ctx, migration.SQL); err != nil {
		return err
	}

	// 记录迁移已执行
	_, err := db.ExecContext(ctx, "INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
