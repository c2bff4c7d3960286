// Package database はデータベース接続の初期化とスキーマ作成を行います。
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"go-multiuser-todo/backend/internal/config"
)

// GetDSN は設定からドライバ別の接続文字列 (DSN) を構築します。
func GetDSN(cfg *config.Config) string {
	if cfg.DBDriver == config.DriverMySQL {
		// 例: user:pass@tcp(db:3306)/dbname
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}
	// 外部キー制約は接続ごとに有効化する必要がある (ON DELETE CASCADE のため)
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DBPath)
}

// Open はデータベース接続を初期化し、疎通を確認します。
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.DBDriver, GetDSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if cfg.DBDriver == config.DriverSQLite {
		// 単一の共有コネクション。書き込みはsqlite側で直列化される
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}
	logrus.WithField("driver", cfg.DBDriver).Info("connected to database")
	return db, nil
}

// EnsureSchema は users と todos テーブルが無ければ作成します。何度呼んでも安全です。
func EnsureSchema(db *sql.DB, driver string) error {
	stmts := sqliteSchema
	if driver == config.DriverMySQL {
		stmts = mysqlSchema
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "failed to create table")
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		todo_id TEXT PRIMARY KEY,
		todo_title TEXT NOT NULL,
		todo_status TEXT,
		user_id TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		todo_id VARCHAR(36) PRIMARY KEY,
		todo_title VARCHAR(255) NOT NULL,
		todo_status VARCHAR(255),
		user_id VARCHAR(36) NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}
