package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	treeCmdConfig
	datasetCmdConfig
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.treeCmdConfig.Validate(); err != nil {
		return err
	}
	return tcc.datasetCmdConfig.Validate()
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{
		treeCmdConfig:    treeCmdConfig{rootCmdConfig: rootConfig},
		datasetCmdConfig: datasetCmdConfig{rootCmdConfig: rootConfig},
	}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree on a dataset",
		Long:  `Test a previously grown tree against a labeled dataset and report its prediction success rate.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging(rootConfig.verbose)
			if err := config.Validate(); err != nil {
				log.Fatal(err)
			}
			ctx := context.Background()
			t, err := config.tree(ctx)
			if err != nil {
				log.Fatal(err)
			}
			testSet, err := config.set(ctx, t.Features)
			if err != nil {
				log.Fatal(err)
			}
			log.Debugf("testing tree against a dataset with %d samples...", testSet.Count())
			successRate, errCount, err := t.Test(testSet)
			if err != nil {
				log.Fatalf("testing the tree: %v", err)
			}
			fmt.Printf("success rate: %f\n", successRate)
			if errCount > 0 {
				fmt.Printf("samples without prediction: %d\n", errCount)
			}
		},
	}
	config.treeCmdConfig.declareFlags(cmd)
	config.datasetCmdConfig.declareFlags(cmd)
	return cmd
}
