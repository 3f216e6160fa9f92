/*
Package csv provides methods to read datasets from and write datasets
to CSV streams.

The header or first row of the CSV content is expected to consist of
the names of the features of the dataset plus the name of the label
column. The rest of the rows should consist of valid values for all
features and/or the '?' string to indicate a missing value.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
)

const missingValueMark = "?"

/*
ReadSet takes an io.Reader for a CSV stream, a slice of features and
the name of the label column and returns a dataset.Set with the
samples parsed from the reader or an error.
*/
func ReadSet(reader io.Reader, features []*feature.Feature, label string) (dataset.Set, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns, labelColumn, err := parseHeader(header, features, label)
	if err != nil {
		return nil, err
	}
	var rows [][]feature.Value
	var labels []string
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		row := make([]feature.Value, len(features))
		for i, f := range features {
			v, err := parseValue(record[columns[i]], f)
			if err != nil {
				return nil, fmt.Errorf("parsing line %d: %v", l, err)
			}
			row[i] = v
		}
		if record[labelColumn] == missingValueMark {
			return nil, fmt.Errorf("parsing line %d: missing label", l)
		}
		rows = append(rows, row)
		labels = append(labels, record[labelColumn])
	}
	return dataset.New(features, rows, labels)
}

/*
ReadMatrix takes an io.Reader for a CSV stream and a slice of
features and returns the feature-value rows parsed from the reader,
without labels. It is meant to read samples to predict: the header
must contain a column for every feature, and any other column is
ignored.
*/
func ReadMatrix(reader io.Reader, features []*feature.Feature) ([][]feature.Value, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns := make([]int, len(features))
	for i, f := range features {
		columns[i] = -1
		for c, name := range header {
			if name == f.Name() {
				columns[i] = c
				break
			}
		}
		if columns[i] < 0 {
			return nil, fmt.Errorf("feature %s not found in CSV header", f.Name())
		}
	}
	var rows [][]feature.Value
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		row := make([]feature.Value, len(features))
		for i, f := range features {
			v, err := parseValue(record[columns[i]], f)
			if err != nil {
				return nil, fmt.Errorf("parsing line %d: %v", l, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

/*
WriteSet takes an io.Writer, a dataset.Set and the name of the label
column and writes the dataset to the writer as CSV, with missing
values represented as '?'. It returns an error if the writing cannot
be completed.
*/
func WriteSet(writer io.Writer, s dataset.Set, label string) error {
	w := csv.NewWriter(writer)
	features := s.Features()
	header := make([]string, 0, len(features)+1)
	for _, f := range features {
		header = append(header, f.Name())
	}
	header = append(header, label)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	for i := 0; i < s.Count(); i++ {
		record := make([]string, 0, len(features)+1)
		for _, v := range s.Row(i) {
			if v.IsMissing() {
				record = append(record, missingValueMark)
			} else {
				record = append(record, v.String())
			}
		}
		record = append(record, s.Label(i))
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing sample %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func parseHeader(header []string, features []*feature.Feature, label string) ([]int, int, error) {
	columns := make([]int, len(features))
	labelColumn := -1
	for i, f := range features {
		columns[i] = -1
		for c, name := range header {
			if name == f.Name() {
				columns[i] = c
				break
			}
		}
		if columns[i] < 0 {
			return nil, 0, fmt.Errorf("feature %s not found in CSV header", f.Name())
		}
	}
	for c, name := range header {
		if name == label {
			labelColumn = c
			break
		}
	}
	if labelColumn < 0 {
		return nil, 0, fmt.Errorf("label column %s not found in CSV header", label)
	}
	return columns, labelColumn, nil
}

func parseValue(s string, f *feature.Feature) (feature.Value, error) {
	if s == missingValueMark {
		return feature.Missing(), nil
	}
	switch f.Type() {
	case feature.Numeric, feature.Ordinal:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return feature.Missing(), fmt.Errorf("feature %s: parsing %q as number: %v", f.Name(), s, err)
		}
		return feature.Num(n), nil
	}
	return feature.Cat(s), nil
}
