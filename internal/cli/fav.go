package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/store"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favourite verbs",
	Long: `Manage the verbs drilled more often by the practice mix. Favourites
are stored per user and survive between sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favourite verbs",
	RunE: func(cmd *cobra.Command, args []string) error {
		favourites, err := openFavourites()
		if err != nil {
			return err
		}
		defer favourites.Close()

		verbs, err := favourites.List(userID)
		if err != nil {
			return err
		}
		if len(verbs) == 0 {
			fmt.Println("No favourite verbs yet. Add one with: drill fav add <verb>")
			return nil
		}
		fmt.Println(strings.Join(verbs, "\n"))
		return nil
	},
}

var favAddCmd = &cobra.Command{
	Use:   "add <verb>...",
	Short: "Mark verbs as favourites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favourites, err := openFavourites()
		if err != nil {
			return err
		}
		defer favourites.Close()

		for _, verb := range args {
			if err := favourites.Add(userID, verb); err != nil {
				return err
			}
		}
		fmt.Printf("Added %d favourite(s).\n", len(args))
		return nil
	},
}

var favRemoveCmd = &cobra.Command{
	Use:   "remove <verb>...",
	Short: "Unmark favourite verbs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favourites, err := openFavourites()
		if err != nil {
			return err
		}
		defer favourites.Close()

		for _, verb := range args {
			if err := favourites.Remove(userID, verb); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Printf("%s was not a favourite.\n", verb)
					continue
				}
				return err
			}
			fmt.Printf("Removed %s.\n", verb)
		}
		return nil
	},
}

func init() {
	favCmd.AddCommand(favListCmd, favAddCmd, favRemoveCmd)
	rootCmd.AddCommand(favCmd)
}
