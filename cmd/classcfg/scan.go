package main

import (
	"fmt"
	"os"

	"github.com/rota-app/classcfg"
	"github.com/rota-app/classcfg/internal/report"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the template files the content patterns select",
	Long: `Expand the content glob patterns against the project root and list the
files a utility-class generator would scan. Files matched by several
patterns are listed once; files ignored by .gitignore are skipped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSlice("pattern", nil, "Glob patterns to scan instead of the configured content")
}

func runScan(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	root := getStringWithFallback("root", "root", ".")
	targets, stats, err := classcfg.ScanTargets(os.DirFS(root), config)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if getBoolWithFallback("verbose", "verbose", false) {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Expanded %d patterns under %s: %d files (skipped %d ignored)\n",
			stats.Patterns, root, stats.FilesScanned, stats.FilesSkipped)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	return report.NewReporter(cmd.OutOrStdout(), reportOptions()).Targets(config, targets, stats)
}
