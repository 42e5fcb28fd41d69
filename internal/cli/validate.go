package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the exercise data files",
	Long: `Validate every exercise file: JSON structure, required fields, enum
membership, duplicate ids, topic/level placement, and the rule that a
prompt must never contain one of its own solutions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := validator.New().ValidateDir(dataDir)
		if report.OK() {
			fmt.Println("All exercise files are valid.")
			return nil
		}

		fmt.Printf("Found %d problem(s):\n", len(report.Problems))
		for _, problem := range report.Problems {
			fmt.Println("  •", problem)
		}
		return report.Err()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
