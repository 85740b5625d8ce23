package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/classcfg
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of classcfg",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "classcfg %s\n", version)
	},
}
