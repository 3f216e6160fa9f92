package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/dataset/csv"
	"github.com/jackhart/ramify/dataset/mongodataset"
	"github.com/jackhart/ramify/dataset/sqldataset"
	"github.com/jackhart/ramify/dataset/sqldataset/pgadapter"
	"github.com/jackhart/ramify/dataset/sqldataset/sqlite3adapter"
	"github.com/jackhart/ramify/feature"
	featureyaml "github.com/jackhart/ramify/feature/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

// datasetCmdConfig holds the flags shared by every command that
// loads a labeled dataset from some backend.
type datasetCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	classFeature  string
	table         string
	collection    string
	maxDBConns    int
}

func (dcc *datasetCmdConfig) Validate() error {
	if dcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if dcc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

/*
features parses the YAML metadata and returns the features to grow
or test on, excluding the class feature itself, which only provides
the labels.
*/
func (dcc *datasetCmdConfig) features() ([]*feature.Feature, error) {
	parsed, err := featureyaml.ReadFeaturesFromFile(dcc.metadataInput)
	if err != nil {
		return nil, err
	}
	features := make([]*feature.Feature, 0, len(parsed))
	var found bool
	for _, f := range parsed {
		if f.Name() == dcc.classFeature {
			found = true
			continue
		}
		features = append(features, f)
	}
	if !found {
		return nil, fmt.Errorf("class feature '%s' is not defined in %s", dcc.classFeature, dcc.metadataInput)
	}
	return features, nil
}

/*
set loads the labeled dataset from the configured input: a CSV file
(or STDIN when no input is given), a SQLite3 database file, a
PostgreSQL database or a MongoDB database, depending on the shape of
the input string.
*/
func (dcc *datasetCmdConfig) set(ctx context.Context, features []*feature.Feature) (dataset.Set, error) {
	if dcc.dataInput == "" {
		log.Debug("reading dataset from STDIN...")
		return csv.ReadSet(os.Stdin, features, dcc.classFeature)
	}
	if strings.HasPrefix(dcc.dataInput, "postgresql://") || strings.HasPrefix(dcc.dataInput, "postgres://") {
		return dcc.postgreSQLSet(ctx, features)
	}
	if strings.HasPrefix(dcc.dataInput, "mongodb://") {
		return dcc.mongoDBSet(features)
	}
	if strings.HasSuffix(dcc.dataInput, ".db") {
		return dcc.sqlite3Set(ctx, features)
	}
	log.Debugf("opening %s to read dataset...", dcc.dataInput)
	f, err := os.Open(dcc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("opening dataset at %s: %v", dcc.dataInput, err)
	}
	defer f.Close()
	s, err := csv.ReadSet(f, features, dcc.classFeature)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %v", err)
	}
	return s, nil
}

func (dcc *datasetCmdConfig) sqlite3Set(ctx context.Context, features []*feature.Feature) (dataset.Set, error) {
	log.Debugf("creating SQLite3 adapter for file %s to read dataset...", dcc.dataInput)
	adapter, err := sqlite3adapter.New(dcc.dataInput, dcc.maxDBConns)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.ReadSet(ctx, adapter, dcc.table, features, dcc.classFeature)
}

func (dcc *datasetCmdConfig) postgreSQLSet(ctx context.Context, features []*feature.Feature) (dataset.Set, error) {
	log.Debugf("creating PostgreSQL adapter for url %s to read dataset...", dcc.dataInput)
	adapter, err := pgadapter.New(dcc.dataInput)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.ReadSet(ctx, adapter, dcc.table, features, dcc.classFeature)
}

func (dcc *datasetCmdConfig) mongoDBSet(features []*feature.Feature) (dataset.Set, error) {
	log.Debugf("dialing MongoDB at %s to read dataset...", dcc.dataInput)
	session, err := mgo.Dial(dcc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", dcc.dataInput, err)
	}
	defer session.Close()
	return mongodataset.ReadSet(session, dcc.collection, features, dcc.classFeature)
}

func (dcc *datasetCmdConfig) declareFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(dcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL/MongoDB connection URL with the dataset (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(dcc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(dcc.classFeature), "class-feature", "c", "", "name of the feature the tree predicts (required)")
	cmd.PersistentFlags().StringVar(&(dcc.table), "table", "samples", "name of the table holding the samples on SQL inputs")
	cmd.PersistentFlags().StringVar(&(dcc.collection), "collection", "samples", "name of the collection holding the samples on MongoDB inputs")
	cmd.PersistentFlags().IntVar(&(dcc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}
