/*
Package sqldataset provides a way to load datasets from SQL databases.

The samples are expected to be available on a single table with one
column per feature plus a column with the class label. NULL column
values are read as missing feature values. Access to specific database
engines is delegated to implementations of the Adapter interface, such
as the ones provided by the sqlite3adapter and pgadapter subpackages.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
)

/*
Adapter is an interface wrapping the access to a specific SQL database
engine.

Its QueryContext method runs a query with the given arguments on the
database and returns the resulting rows or an error.

Its Close method releases the underlying database resources.
*/
type Adapter interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	Close() error
}

/*
ReadSet takes a context, an Adapter, the name of the table holding the
samples, a slice of features and the name of the label column, and
returns a dataset.Set with the samples read from the table or an
error.
*/
func ReadSet(ctx context.Context, adapter Adapter, table string, features []*feature.Feature, label string) (dataset.Set, error) {
	columns := make([]string, 0, len(features)+1)
	for _, f := range features {
		columns = append(columns, f.Name())
	}
	columns = append(columns, label)
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	rows, err := adapter.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying samples on table %s: %v", table, err)
	}
	defer rows.Close()
	var matrix [][]feature.Value
	var labels []string
	for rows.Next() {
		scans := make([]interface{}, len(features)+1)
		numbers := make([]sql.NullFloat64, len(features))
		categories := make([]sql.NullString, len(features))
		for i, f := range features {
			switch f.Type() {
			case feature.Numeric, feature.Ordinal:
				scans[i] = &numbers[i]
			default:
				scans[i] = &categories[i]
			}
		}
		var l sql.NullString
		scans[len(features)] = &l
		if err = rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("scanning sample %d on table %s: %v", len(matrix), table, err)
		}
		if !l.Valid || l.String == "" {
			return nil, fmt.Errorf("sample %d on table %s has no label", len(matrix), table)
		}
		row := make([]feature.Value, len(features))
		for i, f := range features {
			switch f.Type() {
			case feature.Numeric, feature.Ordinal:
				if numbers[i].Valid {
					row[i] = feature.Num(numbers[i].Float64)
				} else {
					row[i] = feature.Missing()
				}
			default:
				if categories[i].Valid {
					row[i] = feature.Cat(categories[i].String)
				} else {
					row[i] = feature.Missing()
				}
			}
		}
		matrix = append(matrix, row)
		labels = append(labels, l.String)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples on table %s: %v", table, err)
	}
	return dataset.New(features, matrix, labels)
}
