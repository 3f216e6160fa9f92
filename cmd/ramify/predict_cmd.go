package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackhart/ramify/dataset/csv"
	"github.com/jackhart/ramify/tree"
	treejson "github.com/jackhart/ramify/tree/json"
	"github.com/jackhart/ramify/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

// treeCmdConfig holds the flags shared by commands that load a
// previously grown tree from a JSON file or a redis database.
type treeCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	redisURL    string
	redisPrefix string
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" && tcc.redisURL == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (tcc *treeCmdConfig) tree(ctx context.Context) (*tree.Tree, error) {
	if tcc.redisURL != "" {
		log.Debugf("loading tree from redis at %s under prefix %s...", tcc.redisURL, tcc.redisPrefix)
		rc := redis.NewClient(&redis.Options{Addr: tcc.redisURL})
		defer rc.Close()
		return redisstore.New(rc, tcc.redisPrefix).Load(ctx)
	}
	log.Debugf("loading tree from %s...", tcc.treeInput)
	f, err := os.Open(tcc.treeInput)
	if err != nil {
		return nil, fmt.Errorf("opening tree at %s: %v", tcc.treeInput, err)
	}
	defer f.Close()
	return treejson.ReadTree(f)
}

func (tcc *treeCmdConfig) declareFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(tcc.treeInput), "tree", "t", "", "path to a JSON file with the tree to use")
	cmd.PersistentFlags().StringVar(&(tcc.redisURL), "redis", "", "redis address to load the tree from instead of a file")
	cmd.PersistentFlags().StringVar(&(tcc.redisPrefix), "redis-prefix", "ramify", "prefix for the redis keys holding the tree")
}

type predictCmdConfig struct {
	treeCmdConfig
	dataInput string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{treeCmdConfig: treeCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of samples with a tree",
		Long:  `Predict the class of the samples on a CSV stream with a previously grown tree, writing one prediction per line to STDOUT.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging(config.verbose)
			if err := config.Validate(); err != nil {
				log.Fatal(err)
			}
			t, err := config.tree(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			f := os.Stdin
			if config.dataInput != "" {
				f, err = os.Open(config.dataInput)
				if err != nil {
					log.Fatalf("opening samples at %s: %v", config.dataInput, err)
				}
				defer f.Close()
			}
			rows, err := csv.ReadMatrix(f, t.Features)
			if err != nil {
				log.Fatalf("reading samples: %v", err)
			}
			for i, row := range rows {
				p, err := t.Predict(row)
				if err != nil {
					log.Fatalf("predicting sample %d: %v", i, err)
				}
				class, prob := p.PredictedValue()
				fmt.Printf("%s\t%f\n", class, prob)
			}
		},
	}
	config.declareFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to a CSV file with the samples to predict (defaults to STDIN)")
	return cmd
}
