package main

import (
	"context"
	"os"
	"time"

	"github.com/jackhart/ramify"
	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/queue"
	"github.com/jackhart/ramify/tree"
	treejson "github.com/jackhart/ramify/tree/json"
	"github.com/jackhart/ramify/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

const workerEmptyQueueSleep = 200 * time.Millisecond

type growCmdConfig struct {
	datasetCmdConfig
	output      string
	minSize     int
	maxDepth    int
	maxImpurity float64
	workers     int
	redisURL    string
	redisPrefix string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{datasetCmdConfig: datasetCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a classification tree from a dataset to predict a certain feature.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging(config.verbose)
			if err := config.Validate(); err != nil {
				log.Fatal(err)
			}
			ctx := context.Background()
			features, err := config.features()
			if err != nil {
				log.Fatal(err)
			}
			trainingSet, err := config.set(ctx, features)
			if err != nil {
				log.Fatal(err)
			}
			grower := ramify.New()
			grower.MinSize = config.minSize
			grower.MaxDepth = config.maxDepth
			grower.MaxImpurity = config.maxImpurity
			log.Debugf("growing tree from a dataset with %d samples and %d features to predict %s...", trainingSet.Count(), len(features), config.classFeature)
			t, err := config.grow(ctx, grower, trainingSet)
			if err != nil {
				log.Fatalf("growing the tree: %v", err)
			}
			log.Debug("done")
			log.Debugf("%v", t)
			if err = config.outputTree(ctx, t); err != nil {
				log.Fatal(err)
			}
		},
	}
	config.declareFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().IntVar(&(config.minSize), "min-size", 2, "minimum number of samples a node needs to be split")
	cmd.PersistentFlags().IntVar(&(config.maxDepth), "max-depth", ramify.UnlimitedDepth, "maximum depth of the tree (negative for no limit)")
	cmd.PersistentFlags().Float64Var(&(config.maxImpurity), "max-impurity", 1, "maximum acceptable impurity for a split to be committed")
	cmd.PersistentFlags().IntVar(&(config.workers), "workers", 1, "number of concurrent workers developing nodes")
	cmd.PersistentFlags().StringVar(&(config.redisURL), "redis", "", "redis address to additionally save the grown tree to")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "ramify", "prefix for the redis keys holding the saved tree")
	return cmd
}

func (gcc *growCmdConfig) grow(ctx context.Context, grower *ramify.Grower, trainingSet dataset.Set) (*tree.Tree, error) {
	if gcc.workers <= 1 {
		return grower.Grow(ctx, trainingSet)
	}
	q := queue.New()
	defer q.Stop(ctx)
	t, err := grower.Seed(ctx, trainingSet, q)
	if err != nil {
		return nil, err
	}
	errs := make(chan error, gcc.workers)
	for i := 0; i < gcc.workers; i++ {
		go func() {
			errs <- ramify.Work(ctx, grower, q, workerEmptyQueueSleep)
		}()
	}
	for i := 0; i < gcc.workers; i++ {
		if werr := <-errs; werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (gcc *growCmdConfig) outputTree(ctx context.Context, t *tree.Tree) error {
	f := os.Stdout
	if gcc.output != "" {
		var err error
		f, err = os.Create(gcc.output)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	if err := treejson.WriteTree(f, t); err != nil {
		return err
	}
	if gcc.redisURL == "" {
		return nil
	}
	log.Debugf("saving tree to redis at %s under prefix %s...", gcc.redisURL, gcc.redisPrefix)
	rc := redis.NewClient(&redis.Options{Addr: gcc.redisURL})
	defer rc.Close()
	return redisstore.New(rc, gcc.redisPrefix).Save(ctx, t)
}
