// Package source reads raw play rows from a listening log export. The log
// may live in a CSV file, an SQLite database, or behind an HTTP URL; all
// three yield the same Row stream.
package source

import (
	"errors"
	"strings"
)

// ErrUnavailable means the row source could not be opened or read at all.
// Callers keep any previously published snapshot when they see it.
var ErrUnavailable = errors.New("row source unavailable")

// Row is one raw record from the log. Fields are unparsed strings; the
// normalizer owns validation.
type Row struct {
	Timestamp    string
	TrackName    string
	ArtistName   string
	MsPlayed     string
	Genres       string // track-level tags, comma separated
	ArtistGenres string // artist-level tags, preferred over Genres
}

// Source is a sequential reader of raw rows. Next returns io.EOF after the
// last row.
type Source interface {
	Next() (Row, error)
	Close() error
}

// Open selects a source implementation from a locator: http(s) URLs fetch a
// CSV export, .db/.sqlite/.sqlite3 paths read a Listen table, anything else
// is treated as a local CSV file.
func Open(locator string) (Source, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return newHTTPSource(locator)
	case strings.HasSuffix(locator, ".db"), strings.HasSuffix(locator, ".sqlite"), strings.HasSuffix(locator, ".sqlite3"):
		return newSQLiteSource(locator)
	default:
		return newCSVSource(locator)
	}
}
