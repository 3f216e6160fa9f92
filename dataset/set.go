/*
Package dataset provides the in-memory training data model for growing
classification trees: a rectangular matrix of feature values together
with a parallel vector of class labels.
*/
package dataset

import (
	"fmt"
	"sort"

	"github.com/jackhart/ramify/feature"
)

/*
Set represents a collection of labeled samples over a fixed slice of
features.

Its Count method returns the number of samples it contains.

Its Column method returns the values of one feature across all
samples, and its Label method the class label of one sample.

Its Classes method returns the sorted distinct class labels of its
samples, and its ClassCounts method the number of samples per class
over a given fixed class ordering.

Its View method returns a subset containing only the samples at the
given row indices, sharing the backing data with the original set.
*/
type Set interface {
	Count() int
	Features() []*feature.Feature
	Row(i int) []feature.Value
	Label(i int) string
	Column(j int) []feature.Value
	Classes() []string
	ClassCounts(classes []string) []int
	View(rows []int) Set
}

type matrixSet struct {
	features []*feature.Feature
	rows     [][]feature.Value
	labels   []string
}

type viewSet struct {
	parent *matrixSet
	rows   []int
}

/*
New takes a slice of features, a matrix of feature values with one row
per sample and one column per feature, and a parallel slice of class
labels, and returns a Set built with them or an error if the matrix is
not rectangular, a value does not conform to its column's feature or a
label is empty.
*/
func New(features []*feature.Feature, rows [][]feature.Value, labels []string) (Set, error) {
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("building dataset: %d rows for %d labels", len(rows), len(labels))
	}
	for i, row := range rows {
		if len(row) != len(features) {
			return nil, fmt.Errorf("building dataset: row %d has %d values for %d features", i, len(row), len(features))
		}
		for j, v := range row {
			ok, err := features[j].Valid(v)
			if !ok {
				return nil, fmt.Errorf("building dataset: row %d: %v", i, err)
			}
		}
		if labels[i] == "" {
			return nil, fmt.Errorf("building dataset: row %d has no label", i)
		}
	}
	return &matrixSet{features, rows, labels}, nil
}

func (s *matrixSet) Count() int {
	return len(s.rows)
}

func (s *matrixSet) Features() []*feature.Feature {
	return s.features
}

func (s *matrixSet) Row(i int) []feature.Value {
	return s.rows[i]
}

func (s *matrixSet) Label(i int) string {
	return s.labels[i]
}

func (s *matrixSet) Column(j int) []feature.Value {
	column := make([]feature.Value, len(s.rows))
	for i, row := range s.rows {
		column[i] = row[j]
	}
	return column
}

func (s *matrixSet) Classes() []string {
	return classesOf(s.labels)
}

func (s *matrixSet) ClassCounts(classes []string) []int {
	counts := make([]int, len(classes))
	for _, l := range s.labels {
		for ci, c := range classes {
			if c == l {
				counts[ci]++
				break
			}
		}
	}
	return counts
}

func (s *matrixSet) View(rows []int) Set {
	return &viewSet{s, rows}
}

func (s *viewSet) Count() int {
	return len(s.rows)
}

func (s *viewSet) Features() []*feature.Feature {
	return s.parent.features
}

func (s *viewSet) Row(i int) []feature.Value {
	return s.parent.rows[s.rows[i]]
}

func (s *viewSet) Label(i int) string {
	return s.parent.labels[s.rows[i]]
}

func (s *viewSet) Column(j int) []feature.Value {
	column := make([]feature.Value, len(s.rows))
	for i, ri := range s.rows {
		column[i] = s.parent.rows[ri][j]
	}
	return column
}

func (s *viewSet) Classes() []string {
	labels := make([]string, len(s.rows))
	for i, ri := range s.rows {
		labels[i] = s.parent.labels[ri]
	}
	return classesOf(labels)
}

func (s *viewSet) ClassCounts(classes []string) []int {
	counts := make([]int, len(classes))
	for _, ri := range s.rows {
		l := s.parent.labels[ri]
		for ci, c := range classes {
			if c == l {
				counts[ci]++
				break
			}
		}
	}
	return counts
}

func (s *viewSet) View(rows []int) Set {
	parentRows := make([]int, len(rows))
	for i, ri := range rows {
		parentRows[i] = s.rows[ri]
	}
	return &viewSet{s.parent, parentRows}
}

func classesOf(labels []string) []string {
	encountered := make(map[string]bool)
	var classes []string
	for _, l := range labels {
		if !encountered[l] {
			encountered[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)
	return classes
}
