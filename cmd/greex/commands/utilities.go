/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for Greex. Provides list-strategies output for
inspecting the strategy priority order and the oracle policy constants.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleascm/greex/pkg/engine"
)

// ListStrategies lists the strategies in their priority order
func ListStrategies(cmd *cobra.Command, args []string) {
	fmt.Println("🧬 Greex - Available Strategies")
	fmt.Println("===============================")
	fmt.Println()

	eng := engine.NewEngine()
	for i, strategy := range eng.Strategies() {
		fmt.Printf("%d. %s\n", i+1, strategy.Name())
		fmt.Printf("   %s\n", strategy.Description())
		fmt.Println()
	}

	fmt.Printf("Priority order is fixed: the first accepted candidate wins.\n")
	fmt.Printf("Accepted candidates are at most %d characters long.\n", engine.MaxPatternLength)
}
