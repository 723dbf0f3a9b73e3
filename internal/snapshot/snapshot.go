// Package snapshot assembles the derived listening aggregates into one
// immutable bundle and publishes it for concurrent readers.
package snapshot

import (
	"sort"
	"time"

	"github.com/fidlr/playstats/internal/model"
	"github.com/fidlr/playstats/internal/normalize"
	"github.com/fidlr/playstats/internal/stats"
)

// defaultPopularity fills the popularity placeholder for artists built from
// a local log, which carries no service-side popularity signal.
const defaultPopularity = 50

// Snapshot is one immutable, atomically published bundle of aggregates.
// Nothing mutates a Snapshot after Assemble returns; replacement is always
// whole-snapshot.
type Snapshot struct {
	BuiltAt    time.Time
	EventCount int

	Artists map[string]model.Artist
	Tracks  map[string]model.Track

	ArtistRankings stats.RankingSet
	TrackRankings  stats.RankingSet
	GenreTrend     []stats.GenreBucket
	FirstSeen      stats.Timeline
	Related        map[string][]string
}

// Assemble runs the four aggregators plus directory construction over one
// normalized event sequence.
func Assemble(events []model.PlayEvent, acc *normalize.Accumulators) *Snapshot {
	artists := make(map[string]model.Artist, len(acc.ArtistNames))
	for key, name := range acc.ArtistNames {
		artists[key] = model.Artist{
			ID:         key,
			Name:       name,
			Genres:     acc.ArtistGenres[key],
			Popularity: defaultPopularity,
		}
	}

	tracks := make(map[string]model.Track, len(acc.TrackNames))
	for key, info := range acc.TrackNames {
		tracks[key] = model.Track{
			ID:         key,
			Name:       info.Name,
			ArtistName: info.ArtistName,
			ArtistID:   model.ArtistKey(info.ArtistName),
		}
	}

	return &Snapshot{
		BuiltAt:        time.Now().UTC(),
		EventCount:     len(events),
		Artists:        artists,
		Tracks:         tracks,
		ArtistRankings: stats.TopArtists(events, acc.ArtistMs),
		TrackRankings:  stats.TopTracks(events, acc.TrackMs),
		GenreTrend:     stats.GenreTrend(events),
		FirstSeen:      stats.FirstSeen(events),
		Related:        stats.RelatedArtists(events),
	}
}

// ArtistKeys returns every artist identity in the directory, ascending.
// This is the canonical order for assigning dense internal ids when packing
// the relationship graph.
func (s *Snapshot) ArtistKeys() []string {
	keys := make([]string, 0, len(s.Artists))
	for key := range s.Artists {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
