package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ramify",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ramify v%s\n", version)
		},
	}
}
