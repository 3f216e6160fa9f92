package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/dataset/csv"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	datasetCmdConfig
	output     string
	restOutput string
	ratio      float64
	seed       int64
}

func (scc *splitCmdConfig) Validate() error {
	if err := scc.datasetCmdConfig.Validate(); err != nil {
		return err
	}
	if scc.ratio <= 0 || scc.ratio >= 1 {
		return fmt.Errorf("ratio must be strictly between 0 and 1")
	}
	if scc.restOutput == "" {
		return fmt.Errorf("required rest-output flag was not set")
	}
	return nil
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{datasetCmdConfig: datasetCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset in two",
		Long:  `Split a dataset into two random CSV subsets, for example to keep part of the samples for testing.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging(config.verbose)
			if err := config.Validate(); err != nil {
				log.Fatal(err)
			}
			features, err := config.features()
			if err != nil {
				log.Fatal(err)
			}
			s, err := config.set(context.Background(), features)
			if err != nil {
				log.Fatal(err)
			}
			first, rest := randomPartition(s, config.ratio, config.seed)
			log.Debugf("splitting %d samples into %d and %d...", s.Count(), first.Count(), rest.Count())
			if err = writeCSVSet(config.output, first, config.classFeature); err != nil {
				log.Fatal(err)
			}
			if err = writeCSVSet(config.restOutput, rest, config.classFeature); err != nil {
				log.Fatal(err)
			}
		},
	}
	config.declareFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to write the first subset to as CSV (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.restOutput), "rest-output", "", "path to a file to write the second subset to as CSV (required)")
	cmd.PersistentFlags().Float64Var(&(config.ratio), "ratio", 0.8, "fraction of samples assigned to the first subset")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random sample assignment (defaults to the current time)")
	return cmd
}

func randomPartition(s dataset.Set, ratio float64, seed int64) (dataset.Set, dataset.Set) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	var firstRows, restRows []int
	for i := 0; i < s.Count(); i++ {
		if r.Float64() < ratio {
			firstRows = append(firstRows, i)
		} else {
			restRows = append(restRows, i)
		}
	}
	return s.View(firstRows), s.View(restRows)
}

func writeCSVSet(path string, s dataset.Set, label string) error {
	f := os.Stdout
	if path != "" {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return csv.WriteSet(f, s, label)
}
