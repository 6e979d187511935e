/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Greex. Provides commands for
pattern inference from labeled examples, the built-in scroll demonstration,
and strategy inspection, with configuration management and logging control.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/greex/cmd/greex/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logDir     string
	jsonLogs   bool

	// Inference configuration
	validExamples   []string
	invalidExamples []string
	validFile       string
	invalidFile     string
	saveResult      bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "greex",
		Short: "Greex - Regular expression inference from labeled examples",
		Long: `Greex infers a single regular expression that exactly discriminates a small
set of valid example strings from a set of invalid ones. An ordered collection
of heuristic strategies proposes candidate patterns from structural
observations, and every candidate is checked against an exact-match oracle
before it is accepted.`,
		Version: commands.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Directory for timestamped log files")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer a discriminating pattern from labeled examples",
		Long: `Infer a regular expression that fully matches every valid example and none
of the invalid ones. Examples are supplied inline or from files with one
example per line. Prints the pattern, or "pattern not found" when no strategy
produces an accepted candidate.`,
		RunE: commands.RunInfer,
	}

	inferCmd.Flags().StringSliceVar(&validExamples, "valid", []string{}, "Valid example strings (must be matched)")
	inferCmd.Flags().StringSliceVar(&invalidExamples, "invalid", []string{}, "Invalid example strings (must be rejected)")
	inferCmd.Flags().StringVar(&validFile, "valid-file", "", "File with valid examples, one per line")
	inferCmd.Flags().StringVar(&invalidFile, "invalid-file", "", "File with invalid examples, one per line")
	inferCmd.Flags().BoolVar(&saveResult, "save", false, "Save the inference result as JSON")

	viper.BindPFlag("infer.valid", inferCmd.Flags().Lookup("valid"))
	viper.BindPFlag("infer.invalid", inferCmd.Flags().Lookup("invalid"))
	viper.BindPFlag("infer.valid_file", inferCmd.Flags().Lookup("valid-file"))
	viper.BindPFlag("infer.invalid_file", inferCmd.Flags().Lookup("invalid-file"))
	viper.BindPFlag("infer.save", inferCmd.Flags().Lookup("save"))

	rootCmd.AddCommand(inferCmd)

	// Add scrolls command for the built-in demonstration
	scrollsCmd := &cobra.Command{
		Use:   "scrolls",
		Short: "Run the built-in scroll demonstration",
		Long: `Run the engine against the built-in scroll example sets and compare the
generated patterns to the expected ones. Useful as a quick end-to-end sanity
check of the strategy pipeline.`,
		RunE: commands.RunScrolls,
	}

	scrollsCmd.Flags().Bool("save", false, "Save the scroll results as JSON")
	viper.BindPFlag("scrolls.save", scrollsCmd.Flags().Lookup("save"))

	rootCmd.AddCommand(scrollsCmd)

	// Add list-strategies command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-strategies",
		Short: "List available strategies and their priority order",
		Long: `List all pattern generation strategies with their descriptions, in the
fixed priority order the engine evaluates them.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.ListStrategies(cmd, args)
		},
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
