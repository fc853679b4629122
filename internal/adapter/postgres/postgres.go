// Package postgres implements the domain repositories on PostgreSQL
// through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"blogapi/internal/domain"

	_ "github.com/lib/pq"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps a gorm handle with an explicit lifecycle: opened once at
// startup, closed at shutdown, and passed down to the repositories.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

// Open connects, configures the pool, pings and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	// Quieter GORM logger
	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold: 1500 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)

	g, err := gorm.Open(gormpg.New(gormpg.Config{Conn: s}), &gorm.Config{Logger: gLogger})
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	if err := g.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Category{},
		&domain.PostCategory{},
		&domain.AuthToken{},
	); err != nil {
		_ = s.Close()
		return nil, err
	}

	return &DB{gorm: g, sql: s}, nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.sql.Close()
}
