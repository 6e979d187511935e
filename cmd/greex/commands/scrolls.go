/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scrolls.go
Description: Scroll demonstration command for Greex. Runs the engine against
the built-in scroll example sets and compares the generated patterns to the
expected ones, printing a pass/fail summary.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/greex/pkg/engine"
	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/utils"
)

// Scroll is one built-in demonstration case: a labeled example set plus the
// patterns accepted as a correct answer.
type Scroll struct {
	Name     string   `json:"name"`
	Valid    []string `json:"valid"`
	Invalid  []string `json:"invalid"`
	Expected []string `json:"expected"`
}

// ScrollResult records the outcome of one scroll run
type ScrollResult struct {
	Scroll    Scroll                      `json:"scroll"`
	Generated string                      `json:"generated"`
	Correct   bool                        `json:"correct"`
	Result    *interfaces.InferenceResult `json:"result"`
}

// BuiltinScrolls returns the demonstration scrolls in their canonical order
func BuiltinScrolls() []Scroll {
	return []Scroll{
		{
			Name:     "Scroll 1",
			Valid:    []string{"abc", "def"},
			Invalid:  []string{"123", "456"},
			Expected: []string{`^\D+$`},
		},
		{
			Name:     "Scroll 2",
			Valid:    []string{"aaa", "abb", "acc"},
			Invalid:  []string{"bbb", "bcc", "bca"},
			Expected: []string{`^[a].+$`},
		},
		{
			Name:     "Scroll 3",
			Valid:    []string{"abc1", "bbb1", "ccc1"},
			Invalid:  []string{"abc", "bbb", "ccc"},
			Expected: []string{`^.+[1]$`},
		},
		{
			Name:     "Scroll 4",
			Valid:    []string{"abc-1", "bbb-1", "cde-1"},
			Invalid:  []string{"abc1", "bbb1", "cde1"},
			Expected: []string{`^.+-.+$`},
		},
		{
			Name:     "Scroll 5",
			Valid:    []string{"foo@abc.com", "bar@def.net"},
			Invalid:  []string{"baz@abc", "qux.com"},
			Expected: []string{`^\D+@\w+\.\w+$`},
		},
	}
}

// RunScrolls runs the built-in scrolls and prints the comparison table
func RunScrolls(cmd *cobra.Command, args []string) error {
	fmt.Println("📜 Greex - Scroll Demonstration")
	fmt.Println("===============================")

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	eng := engine.NewEngine()
	if err := eng.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}
	eng.SetLogger(logger.GetLogger())

	results := make([]ScrollResult, 0, 5)
	allPassed := true

	for _, scroll := range BuiltinScrolls() {
		result := eng.InferWithResult(scroll.Valid, scroll.Invalid)
		logger.LogInference(result.ID, result.Pattern, result.Strategy, result.Found, result.Duration,
			map[string]interface{}{"scroll": scroll.Name})
		correct := patternExpected(result.Pattern, scroll.Expected)
		if !correct {
			allPassed = false
		}
		results = append(results, ScrollResult{
			Scroll:    scroll,
			Generated: result.Pattern,
			Correct:   correct,
			Result:    result,
		})

		status := "✅ PASSED"
		if !correct {
			status = "❌ FAILED"
		}
		fmt.Printf("\n📜 %s: %s\n", scroll.Name, status)
		fmt.Printf("   - Valid: %v\n", scroll.Valid)
		fmt.Printf("   - Invalid: %v\n", scroll.Invalid)
		fmt.Printf("   - Generated: %s\n", result.Pattern)
		if !correct {
			fmt.Printf("   - Expected: %v\n", scroll.Expected)
		}
	}

	fmt.Println("\n--- Summary ---")
	if allPassed {
		fmt.Println("🎉 All scrolls were deciphered correctly!")
	} else {
		fmt.Println("🔥 Some scrolls could not be deciphered correctly.")
	}

	if viper.GetBool("scrolls.save") {
		path, err := utils.WriteResult("scrolls", Version, results)
		if err != nil {
			fmt.Printf("⚠️  Failed to save results: %v\n", err)
		} else {
			fmt.Printf("💾 Results saved to: %s\n", path)
		}
	}

	return nil
}

// patternExpected reports whether the generated pattern is one of the
// accepted answers for a scroll
func patternExpected(generated string, expected []string) bool {
	for _, e := range expected {
		if generated == e {
			return true
		}
	}
	return false
}
