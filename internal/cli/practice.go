package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/session"
)

var (
	practiceLevel           string
	practiceTopic           string
	practiceVerbs           []string
	practiceIncludePrevious bool
	practiceNoShuffle       bool
	practiceNoMix           bool
	practiceRatio           float64
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	Long: `Start an interactive practice session over the filtered exercises.
Favourite verbs (see "drill fav") are drilled more often per the
practice mix.

During the session:
  enter/n  next exercise       p  previous exercise
  s        show solutions      v  list session verbs
  q        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if practiceRatio < 0 || practiceRatio > 1 {
			return fmt.Errorf("ratio must be between 0 and 1, got %v", practiceRatio)
		}

		s, err := loadStore()
		if err != nil {
			return err
		}

		q, err := buildQuery(practiceLevel, practiceTopic, practiceVerbs, practiceIncludePrevious)
		if err != nil {
			return err
		}

		filtered := s.Filter(q)
		if len(filtered) == 0 {
			fmt.Println("No exercises found matching filters.")
			return nil
		}

		favourites, err := openFavourites()
		if err != nil {
			return err
		}
		defer favourites.Close()

		favouriteSet, err := favourites.VerbSet(userID)
		if err != nil {
			return err
		}

		sess := session.New(filtered, session.Options{
			Shuffle:        !practiceNoShuffle,
			UseMix:         !practiceNoMix,
			FavouriteVerbs: favouriteSet,
			Ratio:          &practiceRatio,
		})

		runPracticeLoop(sess)
		return nil
	},
}

func init() {
	practiceCmd.Flags().StringVarP(&practiceLevel, "level", "l", "", "filter by level")
	practiceCmd.Flags().StringVarP(&practiceTopic, "topic", "t", "", "filter by topic")
	practiceCmd.Flags().StringSliceVar(&practiceVerbs, "verb", nil, "filter by verb (repeatable)")
	practiceCmd.Flags().BoolVarP(&practiceIncludePrevious, "include-previous", "p", false, "include exercises from previous levels")
	practiceCmd.Flags().BoolVar(&practiceNoShuffle, "no-shuffle", false, "keep the filtered order instead of shuffling")
	practiceCmd.Flags().BoolVar(&practiceNoMix, "no-mix", false, "disable the favourite/new-verb practice mix")
	practiceCmd.Flags().Float64Var(&practiceRatio, "ratio", session.DefaultFavouriteRatio, "favourite share of the practice mix")
	rootCmd.AddCommand(practiceCmd)
}

func runPracticeLoop(sess *session.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	showExercise(sess)

	for !sess.Complete() {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "", "n", "next":
			if !sess.Advance() {
				fmt.Println("\nSession complete. Gut gemacht!")
				return
			}
			showExercise(sess)
		case "p", "prev", "previous":
			if !sess.Retreat() {
				fmt.Println("Already at the first exercise.")
				continue
			}
			showExercise(sess)
		case "s", "show":
			showSolutions(sess)
		case "v", "verbs":
			fmt.Println("Verbs in this session:", strings.Join(sess.Verbs(), ", "))
		case "q", "quit":
			return
		default:
			fmt.Println("Commands: enter/n next, p previous, s solutions, v verbs, q quit")
		}
	}
}

func showExercise(sess *session.Session) {
	ex, ok := sess.Current()
	if !ok {
		return
	}
	position, total := sess.Progress()

	fmt.Printf("\n[%d/%d] %s · %s · %s\n", position, total, ex.Level, ex.Topic, ex.Verb)
	fmt.Println(ex.Prompt)
	if len(ex.Choices) > 0 {
		for i, choice := range ex.Choices {
			fmt.Printf("  %c) %s\n", 'a'+i, choice)
		}
	}
	if len(ex.ConstructionHints) > 0 {
		fmt.Println("Hints:", strings.Join(ex.ConstructionHints, " · "))
	}
	if ex.Hint != "" {
		fmt.Println("Hint:", ex.Hint)
	}
	if ex.English != "" {
		fmt.Println("English:", ex.English)
	}
}

func showSolutions(sess *session.Session) {
	ex, ok := sess.Current()
	if !ok {
		return
	}
	fmt.Println("Example solutions:")
	for _, solution := range ex.ExampleSolutions {
		fmt.Println("  -", solution)
	}
}
