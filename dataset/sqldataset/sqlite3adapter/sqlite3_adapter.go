/*
Package sqlite3adapter provides a sqldataset.Adapter backed by a
SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	// imported to register the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db *sql.DB
}

/*
New takes the path to a SQLite3 database file and a maximum number of
open connections (0 for no limit) and returns an adapter to read
datasets from the file or an error if the database cannot be opened.
*/
func New(filepath string, maxConns int) (*Adapter, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database at %s: %v", filepath, err)
	}
	db.SetMaxOpenConns(maxConns)
	return &Adapter{db}, nil
}

func (a *Adapter) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, query, args...)
}

func (a *Adapter) Close() error {
	return a.db.Close()
}
