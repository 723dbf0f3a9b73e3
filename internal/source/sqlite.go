package source

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSource streams play rows out of an existing scrobble database. It
// never writes; the database is somebody else's to maintain.
type sqliteSource struct {
	db   *sql.DB
	rows *sql.Rows
}

const listenQuery = `
SELECT ts, track_name, artist_name, ms_played,
       COALESCE(genres, ''), COALESCE(artist_genres, '')
FROM Listen
ORDER BY rowid
;
`

func newSQLiteSource(path string) (Source, error) {
	// sql.Open would happily create an empty database file.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnavailable, path, err)
	}

	rows, err := db.Query(listenQuery)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: querying Listen table: %v", ErrUnavailable, err)
	}

	return &sqliteSource{db: db, rows: rows}, nil
}

func (s *sqliteSource) Next() (Row, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return Row{}, fmt.Errorf("reading Listen row: %w", err)
		}
		return Row{}, io.EOF
	}

	var row Row
	var msPlayed int64
	err := s.rows.Scan(&row.Timestamp, &row.TrackName, &row.ArtistName,
		&msPlayed, &row.Genres, &row.ArtistGenres)
	if err != nil {
		return Row{}, fmt.Errorf("scanning Listen row: %w", err)
	}
	row.MsPlayed = strconv.FormatInt(msPlayed, 10)
	return row, nil
}

func (s *sqliteSource) Close() error {
	s.rows.Close()
	return s.db.Close()
}
