package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Column names as written by the Spotify extended history export.
const (
	colTimestamp    = "ts"
	colTrackName    = "Track Name"
	colArtistName   = "Artist Name(s)"
	colMsPlayed     = "ms_played"
	colGenres       = "Genres"
	colArtistGenres = "Artist Genres"
)

type csvSource struct {
	rc      io.ReadCloser
	reader  *csv.Reader
	columns map[string]int
}

func newCSVSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnavailable, path, err)
	}
	src, err := newCSVSourceFromReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return src, nil
}

func newCSVSourceFromReader(rc io.ReadCloser) (Source, error) {
	reader := csv.NewReader(rc)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV header: %v", ErrUnavailable, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{colTimestamp, colTrackName, colArtistName, colMsPlayed} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: CSV header missing column %q", ErrUnavailable, required)
		}
	}

	return &csvSource{rc: rc, reader: reader, columns: columns}, nil
}

func (s *csvSource) Next() (Row, error) {
	record, err := s.reader.Read()
	if err != nil {
		// io.EOF passes through untouched as the end-of-stream marker.
		if err == io.EOF {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("reading CSV record: %w", err)
	}

	return Row{
		Timestamp:    s.field(record, colTimestamp),
		TrackName:    s.field(record, colTrackName),
		ArtistName:   s.field(record, colArtistName),
		MsPlayed:     s.field(record, colMsPlayed),
		Genres:       s.field(record, colGenres),
		ArtistGenres: s.field(record, colArtistGenres),
	}, nil
}

func (s *csvSource) field(record []string, name string) string {
	i, ok := s.columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func (s *csvSource) Close() error {
	return s.rc.Close()
}
