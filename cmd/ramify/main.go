package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ramify",
		Short: "ramify is a tool to grow classification trees",
		Long:  `A tool to grow CART classification trees from your data, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config), splitCmd(config))
	return rootCmd
}
