package main

import (
	"fmt"
	"strings"

	"github.com/rota-app/classcfg"
	"github.com/rota-app/classcfg/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration record",
	Long: `Report every problem with the configuration: empty content, invalid
glob syntax, patterns outside the project root and plugin references
that are not registered. Exits 1 when any problem is found.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		problems := validateConfig(config, classcfg.DefaultRegistry())

		if !getBoolWithFallback("quiet", "quiet", false) {
			r := report.NewReporter(cmd.OutOrStdout(), reportOptions())
			if err := r.Problems(configPath(), problems); err != nil {
				return err
			}
		}

		if len(problems) > 0 {
			return fmt.Errorf("%s: %d problems", configPath(), len(problems))
		}
		return nil
	},
}

// validateConfig adds plugin resolution to the record's own checks.
func validateConfig(config classcfg.Config, registry *classcfg.Registry) []classcfg.Problem {
	problems := config.Validate()
	for i, ref := range config.Plugins {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		if _, ok := registry.Lookup(ref); !ok {
			problems = append(problems, classcfg.Problem{
				Field: fmt.Sprintf("plugins[%d]", i),
				Value: ref,
				Text:  classcfg.ErrUnknownPlugin.Error(),
			})
		}
	}
	return problems
}
