/*
Package mongodataset provides a way to load datasets from a MongoDB
database.

Samples are expected to be documents on a collection, with one field
per feature plus a field with the class label. Absent fields are read
as missing feature values.
*/
package mongodataset

import (
	"fmt"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const defaultCollectionName = "samples"

/*
ReadSet takes a MongoDB database session, the name of the collection
holding the samples (defaulting to "samples" when empty), a slice of
features and the name of the label field, and returns a dataset.Set
with the samples read from the collection or an error.
*/
func ReadSet(session *mgo.Session, collection string, features []*feature.Feature, label string) (dataset.Set, error) {
	if collection == "" {
		collection = defaultCollectionName
	}
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var rows [][]feature.Value
	var labels []string
	var doc bson.M
	for iter.Next(&doc) {
		row := make([]feature.Value, len(features))
		for i, f := range features {
			v, err := parseValue(doc[f.Name()], f)
			if err != nil {
				return nil, fmt.Errorf("reading sample %d on collection %s: %v", len(rows), collection, err)
			}
			row[i] = v
		}
		l, ok := doc[label].(string)
		if !ok || l == "" {
			return nil, fmt.Errorf("reading sample %d on collection %s: missing or non-string label field %s", len(rows), collection, label)
		}
		rows = append(rows, row)
		labels = append(labels, l)
		doc = bson.M{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading samples on collection %s: %v", collection, err)
	}
	return dataset.New(features, rows, labels)
}

func parseValue(fieldValue interface{}, f *feature.Feature) (feature.Value, error) {
	if fieldValue == nil {
		return feature.Missing(), nil
	}
	switch f.Type() {
	case feature.Numeric, feature.Ordinal:
		switch n := fieldValue.(type) {
		case float64:
			return feature.Num(n), nil
		case int:
			return feature.Num(float64(n)), nil
		case int64:
			return feature.Num(float64(n)), nil
		}
		return feature.Missing(), fmt.Errorf("feature %s expects a numeric field, got %T", f.Name(), fieldValue)
	}
	c, ok := fieldValue.(string)
	if !ok {
		return feature.Missing(), fmt.Errorf("feature %s expects a string field, got %T", f.Name(), fieldValue)
	}
	return feature.Cat(c), nil
}
