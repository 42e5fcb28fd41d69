package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/store"
)

var (
	listLevel           string
	listTopic           string
	listVerbs           []string
	listIncludePrevious bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercises matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}

		q, err := buildQuery(listLevel, listTopic, listVerbs, listIncludePrevious)
		if err != nil {
			return err
		}

		exercises := s.Filter(q)
		if len(exercises) == 0 {
			fmt.Println("No exercises found matching filters.")
			return nil
		}

		sort.Slice(exercises, func(i, j int) bool {
			a, b := exercises[i], exercises[j]
			if a.Level != b.Level {
				return a.Level.Before(b.Level)
			}
			if a.Topic != b.Topic {
				return a.Topic < b.Topic
			}
			return a.ID < b.ID
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLEVEL\tVERB\tTOPIC\tTASK")
		for _, ex := range exercises {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ex.ID, ex.Level, ex.Verb, ex.Topic, ex.TaskKind)
		}
		w.Flush()
		fmt.Printf("\n%d exercises\n", len(exercises))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listLevel, "level", "l", "", "filter by level (A2.1, A2.2, B1.1, B1.2)")
	listCmd.Flags().StringVarP(&listTopic, "topic", "t", "", "filter by topic (kasus, trennbar, praeposition, reflexiv, partizip_ii)")
	listCmd.Flags().StringSliceVar(&listVerbs, "verb", nil, "filter by verb (repeatable)")
	listCmd.Flags().BoolVarP(&listIncludePrevious, "include-previous", "p", false, "include exercises from previous levels")
	rootCmd.AddCommand(listCmd)
}

// buildQuery parses filter tokens into a store query. Unknown tokens
// surface as usage errors.
func buildQuery(levelToken, topicToken string, verbs []string, includePrevious bool) (store.Query, error) {
	var q store.Query
	if levelToken != "" {
		level, err := exercise.ParseLevel(levelToken)
		if err != nil {
			return store.Query{}, err
		}
		q.Level = &level
	}
	if topicToken != "" {
		topic, err := exercise.ParseTopic(topicToken)
		if err != nil {
			return store.Query{}, err
		}
		q.Topic = &topic
	}
	for _, v := range verbs {
		if v = strings.TrimSpace(v); v != "" {
			q.Verbs = append(q.Verbs, v)
		}
	}
	q.IncludePreviousLevels = includePrevious
	return q, nil
}
