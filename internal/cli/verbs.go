package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

var (
	verbsLevel           string
	verbsTopic           string
	verbsIncludePrevious bool
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the distinct verbs in the filtered exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}

		q, err := buildQuery(verbsLevel, verbsTopic, nil, verbsIncludePrevious)
		if err != nil {
			return err
		}

		verbs := exercise.Verbs(s.Filter(q))
		if len(verbs) == 0 {
			fmt.Println("No verbs found matching filters.")
			return nil
		}
		fmt.Println(strings.Join(verbs, "\n"))
		return nil
	},
}

func init() {
	verbsCmd.Flags().StringVarP(&verbsLevel, "level", "l", "", "filter by level")
	verbsCmd.Flags().StringVarP(&verbsTopic, "topic", "t", "", "filter by topic")
	verbsCmd.Flags().BoolVarP(&verbsIncludePrevious, "include-previous", "p", false, "include exercises from previous levels")
	rootCmd.AddCommand(verbsCmd)
}
