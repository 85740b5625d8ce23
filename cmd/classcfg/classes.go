package main

import (
	"fmt"
	"os"

	"github.com/rota-app/classcfg"
	"github.com/rota-app/classcfg/internal/report"
	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List candidate utility classes used by the scanned templates",
	Long: `Scan every content target, collect the tokens of its class attributes
(Django template tags are stripped) and run the configured plugins.
The result is the class set a utility-class generator would emit.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runClasses,
}

func init() {
	classesCmd.Flags().StringSlice("pattern", nil, "Glob patterns to scan instead of the configured content")
}

func runClasses(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	plugins, err := classcfg.DefaultRegistry().Load(config.Plugins)
	if err != nil {
		return err
	}

	root := getStringWithFallback("root", "root", ".")
	fsys := os.DirFS(root)

	targets, stats, err := classcfg.ScanTargets(fsys, config)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	set := classcfg.ExtractClasses(fsys, targets, plugins)

	if getBoolWithFallback("verbose", "verbose", false) {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Scanned %d files with %d plugins: %d classes\n",
			stats.FilesScanned, len(plugins), len(set.Classes))
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	return report.NewReporter(cmd.OutOrStdout(), reportOptions()).Classes(set)
}
