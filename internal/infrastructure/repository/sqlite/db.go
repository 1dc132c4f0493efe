package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the sqlite database file. Foreign keys are enabled and
// writers are serialized by busy_timeout rather than failing immediately.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}

	// sqlite allows one writer at a time; more connections just contend.
	db.SetMaxOpenConns(1)

	return db, nil
}
