/*
Package pgadapter provides a sqldataset.Adapter backed by a PostgreSQL
database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	// imported to register the postgres driver
	_ "github.com/lib/pq"
)

type Adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns an adapter to read
datasets from the database it points to, or an error if the database
cannot be opened or pinged.
*/
func New(connectionURL string) (*Adapter, error) {
	db, err := sql.Open("postgres", connectionURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %v", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres database: %v", err)
	}
	return &Adapter{db}, nil
}

func (a *Adapter) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, query, args...)
}

func (a *Adapter) Close() error {
	return a.db.Close()
}
