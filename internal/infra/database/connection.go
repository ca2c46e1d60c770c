package database

import (
	"context"
	"database/sql"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

// NewDBConnection opens the pool, applies limits and proves the connection
// with a ping. dbName, when non-empty, overrides the database named in the
// connection string.
func NewDBConnection(connString, dbName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", ApplyDBName(connString, dbName))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ApplyDBName rewrites the database part of a connection string. Supports
// both URL ("postgres://...") and keyword ("host=... dbname=...") forms.
func ApplyDBName(connString, dbName string) string {
	if dbName == "" {
		return connString
	}
	if strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://") {
		u, err := url.Parse(connString)
		if err != nil {
			return connString
		}
		u.Path = "/" + dbName
		return u.String()
	}
	return connString + " dbname=" + dbName
}
