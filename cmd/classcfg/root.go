package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classcfg",
	Short: "Content configuration for utility-class generation",
	Long: `Load, validate and consume the utility-class content configuration.
The content globs decide which templates are scanned for class usage;
theme.extend and plugins are passed through to the generator.`,
	// Default behavior: run scan when no subcommand is given.
	// We must call loadConfig here because PreRunE of scanCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runScan(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", configFileName, "Config file path")
	rootCmd.PersistentFlags().String("root", ".", "Project root the content patterns are relative to")
	rootCmd.PersistentFlags().String("format", "", "Output format: text|json")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
