package logos

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(path string) (Store, error) {
	db, err := sql.Open("sqlite", path+"?_foreign_keys=1")
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS logos (
        key TEXT PRIMARY KEY,
        url TEXT NOT NULL,
        png BLOB NOT NULL,
        fetched_at TEXT NOT NULL
    );`)
	return err
}

func (s *sqliteStore) Get(key string) (*Logo, error) {
	row := s.db.QueryRow(`SELECT key, url, png, fetched_at FROM logos WHERE key = ?`, key)
	var l Logo
	var ts string
	if err := row.Scan(&l.Key, &l.URL, &l.PNG, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	l.FetchedAt, _ = time.Parse(time.RFC3339, ts)
	return &l, nil
}

func (s *sqliteStore) Put(l *Logo) error {
	_, err := s.db.Exec(
		`INSERT INTO logos(key, url, png, fetched_at) VALUES (?, ?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET url=excluded.url, png=excluded.png, fetched_at=excluded.fetched_at`,
		l.Key, l.URL, l.PNG, l.FetchedAt.Format(time.RFC3339))
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }
