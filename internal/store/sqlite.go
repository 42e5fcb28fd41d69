package store

import (
	"database/sql"
	"sort"

	_ "modernc.org/sqlite"
)

const favouritesSchema = `
CREATE TABLE IF NOT EXISTS favourite_verbs (
    user_id TEXT NOT NULL,
    verb    TEXT NOT NULL,
    PRIMARY KEY (user_id, verb)
);
`

// FavouriteStore persists each user's favourite verbs in SQLite. It is
// the only state that outlives a process; exercises themselves are
// reloaded from the data files on every start.
type FavouriteStore struct {
	db *sql.DB
}

// NewFavouriteStore opens (and if needed creates) the favourites
// database at dbPath.
func NewFavouriteStore(dbPath string) (*FavouriteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(favouritesSchema); err != nil {
		return nil, err
	}
	return &FavouriteStore{db: db}, nil
}

func (s *FavouriteStore) Close() error {
	return s.db.Close()
}

// List returns the user's favourite verbs sorted alphabetically.
func (s *FavouriteStore) List(userID string) ([]string, error) {
	rows, err := s.db.Query("SELECT verb FROM favourite_verbs WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verbs []string
	for rows.Next() {
		var verb string
		if err := rows.Scan(&verb); err != nil {
			return nil, err
		}
		verbs = append(verbs, verb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(verbs)
	return verbs, nil
}

// VerbSet returns the user's favourites as a membership set, the shape
// the session sequencer consumes.
func (s *FavouriteStore) VerbSet(userID string) (map[string]bool, error) {
	verbs, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		set[v] = true
	}
	return set, nil
}

// Add marks a verb as favourite. Adding an existing favourite is a no-op.
func (s *FavouriteStore) Add(userID, verb string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO favourite_verbs (user_id, verb) VALUES (?, ?)", userID, verb)
	return err
}

// Remove unmarks a favourite verb.
func (s *FavouriteStore) Remove(userID, verb string) error {
	result, err := s.db.Exec("DELETE FROM favourite_verbs WHERE user_id = ? AND verb = ?", userID, verb)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Replace swaps the user's whole favourite set in one transaction.
func (s *FavouriteStore) Replace(userID string, verbs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM favourite_verbs WHERE user_id = ?", userID); err != nil {
		return err
	}
	for _, verb := range verbs {
		if _, err := tx.Exec("INSERT OR IGNORE INTO favourite_verbs (user_id, verb) VALUES (?, ?)", userID, verb); err != nil {
			return err
		}
	}
	return tx.Commit()
}
