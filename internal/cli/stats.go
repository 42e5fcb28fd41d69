package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/domain/exercise"
)

var (
	statsLevel           string
	statsTopic           string
	statsIncludePrevious bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show exercise counts by level, topic and task type",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}

		q, err := buildQuery(statsLevel, statsTopic, nil, statsIncludePrevious)
		if err != nil {
			return err
		}

		exercises := s.Filter(q)
		if len(exercises) == 0 {
			fmt.Println("No exercises found matching filters.")
			return nil
		}

		t := tallyExercises(exercises)
		fmt.Printf("Total exercises: %d\n\n", len(exercises))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEVEL\tCOUNT")
		for _, level := range exercise.Levels() {
			if n := t.byLevel[level]; n > 0 {
				fmt.Fprintf(w, "%s\t%d\n", level, n)
			}
		}
		fmt.Fprintln(w, "\nTOPIC\tCOUNT")
		for _, topic := range exercise.Topics() {
			if n := t.byTopic[topic]; n > 0 {
				fmt.Fprintf(w, "%s\t%d\n", topic, n)
			}
		}
		fmt.Fprintln(w, "\nTASK\tCOUNT")
		for _, kind := range exercise.TaskKinds() {
			if n := t.byTask[kind]; n > 0 {
				fmt.Fprintf(w, "%s\t%d\n", kind, n)
			}
		}
		w.Flush()
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsLevel, "level", "l", "", "filter by level")
	statsCmd.Flags().StringVarP(&statsTopic, "topic", "t", "", "filter by topic")
	statsCmd.Flags().BoolVarP(&statsIncludePrevious, "include-previous", "p", false, "include exercises from previous levels")
	rootCmd.AddCommand(statsCmd)
}

type tally struct {
	byLevel map[exercise.Level]int
	byTopic map[exercise.Topic]int
	byTask  map[exercise.TaskKind]int
}

func tallyExercises(exercises []exercise.Exercise) tally {
	t := tally{
		byLevel: make(map[exercise.Level]int),
		byTopic: make(map[exercise.Topic]int),
		byTask:  make(map[exercise.TaskKind]int),
	}
	for _, ex := range exercises {
		t.byLevel[ex.Level]++
		t.byTopic[ex.Topic]++
		t.byTask[ex.TaskKind]++
	}
	return t
}
