// Package cli is the terminal front-end: list exercises, run practice
// sessions, and manage favourite verbs without the HTTP server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verbdrill/backend/internal/infrastructure/config"
	"github.com/verbdrill/backend/internal/loader"
	"github.com/verbdrill/backend/internal/store"
	"github.com/verbdrill/backend/internal/validator"
)

var (
	dataDir      string
	favouritesDB string
	userID       string
)

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "German grammar drills in the terminal",
	Long: `Drill presents pre-authored German grammar exercises: filter them by
level, topic or verb, practice them in a favourite-biased order, and
reveal example solutions. Nothing is graded.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", cfg.DataDir, "directory holding exercises/{level}/{topic}.json")
	rootCmd.PersistentFlags().StringVar(&favouritesDB, "favourites-db", cfg.FavouritesDBPath, "path to the favourites database")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "default", "user the favourites belong to")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadStore loads and validates the exercise data. Every command that
// touches exercises goes through here, so none of them can run on an
// unvalidated store.
func loadStore() (*store.Store, error) {
	records, err := loader.LoadAll(dataDir)
	if err != nil {
		return nil, err
	}
	return store.New(records, validator.New())
}

func openFavourites() (*store.FavouriteStore, error) {
	return store.NewFavouriteStore(favouritesDB)
}
