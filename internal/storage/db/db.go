package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn := dataSource(cfg)

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if driver == "sqlite3" {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
		db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

func dataSource(cfg config.DBConfig) (string, string) {
	if cfg.Driver == "sqlite3" {
		return "sqlite3", cfg.Path
	}

	ssl := cfg.Conn.SSL
	if ssl == "" {
		ssl = "disable"
	}

	return "postgres", fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, ssl)
}
