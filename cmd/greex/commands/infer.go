/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Inference command implementation for Greex. Reads labeled valid
and invalid example strings from flags or files, runs the pattern inference
engine, and prints the discriminating pattern or the not-found sentinel.
*/

package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/greex/pkg/engine"
	"github.com/kleascm/greex/pkg/utils"
)

// Version is the Greex release version stamped into saved results
const Version = "1.0.0"

// RunInfer executes pattern inference over the provided example sets
func RunInfer(cmd *cobra.Command, args []string) error {
	fmt.Println("🧬 Greex - Pattern Inference")
	fmt.Println("============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for inference
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	valid, err := collectExamples(viper.GetStringSlice("infer.valid"), viper.GetString("infer.valid_file"))
	if err != nil {
		return fmt.Errorf("failed to load valid examples: %w", err)
	}
	invalid, err := collectExamples(viper.GetStringSlice("infer.invalid"), viper.GetString("infer.invalid_file"))
	if err != nil {
		return fmt.Errorf("failed to load invalid examples: %w", err)
	}

	fmt.Printf("📊 Valid examples: %d\n", len(valid))
	fmt.Printf("📊 Invalid examples: %d\n", len(invalid))
	fmt.Println()

	eng := engine.NewEngine()
	if err := eng.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}
	eng.SetLogger(logger.GetLogger())

	fmt.Println("🧠 Inferring discriminating pattern...")
	startTime := time.Now()
	result := eng.InferWithResult(valid, invalid)
	fmt.Printf("✅ Inference completed in %v\n", time.Since(startTime))
	fmt.Println()

	logger.LogExampleSet(result.ID, len(valid), len(invalid), nil)
	logger.LogInference(result.ID, result.Pattern, result.Strategy, result.Found, result.Duration, nil)

	if result.Found {
		fmt.Printf("📝 Pattern:  %s\n", result.Pattern)
		fmt.Printf("🎯 Strategy: %s\n", result.Strategy)
	} else {
		fmt.Printf("❌ %s\n", engine.PatternNotFound)
	}

	// Save result to the results directory if requested
	if viper.GetBool("infer.save") {
		path, err := utils.WriteResult("infer", Version, result)
		if err != nil {
			fmt.Printf("⚠️  Failed to save result: %v\n", err)
		} else {
			fmt.Printf("💾 Result saved to: %s\n", path)
		}
	}

	return nil
}

// collectExamples merges inline examples with the contents of an optional
// example file (one example per line, blank lines skipped).
func collectExamples(inline []string, path string) ([]string, error) {
	examples := make([]string, 0, len(inline))
	examples = append(examples, inline...)

	if path == "" {
		return examples, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read example file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		examples = append(examples, line)
	}

	return examples, nil
}
