// Package normalize turns raw log rows into typed play events and gathers
// the lifetime accumulators the ranking engine needs.
package normalize

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fidlr/playstats/internal/model"
	"github.com/fidlr/playstats/internal/source"
)

// RowError reports a single raw row that failed to parse and which field
// was at fault. The whole batch aborts on the first one: a corrupt input
// must never silently produce an incomplete snapshot.
type RowError struct {
	Line  int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %v", e.Line, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// TrackInfo carries the display names behind a track identity key.
type TrackInfo struct {
	Name       string
	ArtistName string
}

// Accumulators are the lifetime totals owned by the caller and updated
// incrementally as rows are consumed. All maps are keyed by identity key.
type Accumulators struct {
	ArtistMs     map[string]uint64
	TrackMs      map[string]uint64
	ArtistNames  map[string]string
	TrackNames   map[string]TrackInfo
	ArtistGenres map[string][]string // most recently seen tag set per artist
}

func newAccumulators() *Accumulators {
	return &Accumulators{
		ArtistMs:     make(map[string]uint64),
		TrackMs:      make(map[string]uint64),
		ArtistNames:  make(map[string]string),
		TrackNames:   make(map[string]TrackInfo),
		ArtistGenres: make(map[string][]string),
	}
}

// Normalizer consumes raw rows one at a time and produces the sorted event
// sequence on Finish.
type Normalizer struct {
	events []model.PlayEvent
	acc    *Accumulators
	line   int
}

func New() *Normalizer {
	return &Normalizer{acc: newAccumulators()}
}

// Consume parses one raw row. On failure it returns a *RowError naming the
// offending field and leaves no partial state behind for that row.
func (n *Normalizer) Consume(row source.Row) error {
	n.line++

	if row.TrackName == "" {
		return &RowError{Line: n.line, Field: "track name", Err: fmt.Errorf("missing")}
	}
	if row.ArtistName == "" {
		return &RowError{Line: n.line, Field: "artist name", Err: fmt.Errorf("missing")}
	}

	timestamp, err := time.Parse(time.RFC3339, row.Timestamp)
	if err != nil {
		return &RowError{Line: n.line, Field: "timestamp", Err: err}
	}

	msPlayed, err := strconv.ParseUint(row.MsPlayed, 10, 64)
	if err != nil {
		return &RowError{Line: n.line, Field: "ms_played", Err: err}
	}

	// Artist-level tags win over track-level ones when both are present.
	genres := parseGenres(row.ArtistGenres)
	if len(genres) == 0 {
		genres = parseGenres(row.Genres)
	}

	n.events = append(n.events, model.PlayEvent{
		Timestamp:  timestamp.UTC(),
		TrackName:  row.TrackName,
		ArtistName: row.ArtistName,
		MsPlayed:   msPlayed,
		Genres:     genres,
	})

	artistKey := model.ArtistKey(row.ArtistName)
	trackKey := model.TrackKey(row.TrackName, row.ArtistName)
	n.acc.ArtistMs[artistKey] += msPlayed
	n.acc.TrackMs[trackKey] += msPlayed
	n.acc.ArtistNames[artistKey] = row.ArtistName
	n.acc.TrackNames[trackKey] = TrackInfo{Name: row.TrackName, ArtistName: row.ArtistName}
	n.acc.ArtistGenres[artistKey] = genres

	return nil
}

// Finish sorts the consumed events ascending by timestamp and hands back
// the sequence plus the accumulators. The sort is stable so rows with equal
// timestamps keep their input order; every later stage assumes temporal
// order.
func (n *Normalizer) Finish() ([]model.PlayEvent, *Accumulators) {
	events := n.events
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, n.acc
}

// FromSource drains a row source through a Normalizer. The first bad row or
// read failure aborts the whole batch.
func FromSource(src source.Source) ([]model.PlayEvent, *Accumulators, error) {
	n := New()
	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if err := n.Consume(row); err != nil {
			return nil, nil, err
		}
	}
	events, acc := n.Finish()
	return events, acc, nil
}

func parseGenres(tags string) []string {
	if tags == "" {
		return nil
	}
	var genres []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			genres = append(genres, tag)
		}
	}
	return genres
}
