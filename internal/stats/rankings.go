// Package stats derives the queryable aggregates from a normalized,
// chronologically ordered play event sequence. Every function here is pure:
// same events in, same aggregates out.
package stats

import (
	"sort"
	"time"

	"github.com/fidlr/playstats/internal/model"
)

const (
	rankingLimit = 50

	shortWindow  = 4 * 7 * 24 * time.Hour
	mediumWindow = 180 * 24 * time.Hour
)

// RankingSet holds the three windowed top lists for one domain, each up to
// 50 identity keys, descending by accumulated play duration.
type RankingSet struct {
	Short  []string
	Medium []string
	Long   []string
}

// Window selects a list by name: "short", "medium", or "long". Unknown
// names select nothing.
func (r RankingSet) Window(name string) []string {
	switch name {
	case "short":
		return r.Short
	case "medium":
		return r.Medium
	case "long":
		return r.Long
	}
	return nil
}

// TopArtists ranks artist identities over the short (4 week), medium (180
// day), and lifetime windows. Window boundaries are relative to the latest
// timestamp in the data, never wall-clock time, so reprocessing an old log
// gives identical results.
func TopArtists(events []model.PlayEvent, lifetime map[string]uint64) RankingSet {
	return windowedRanking(events, lifetime, func(ev model.PlayEvent) string {
		return model.ArtistKey(ev.ArtistName)
	})
}

// TopTracks is TopArtists for (track, artist) identities.
func TopTracks(events []model.PlayEvent, lifetime map[string]uint64) RankingSet {
	return windowedRanking(events, lifetime, func(ev model.PlayEvent) string {
		return model.TrackKey(ev.TrackName, ev.ArtistName)
	})
}

func windowedRanking(events []model.PlayEvent, lifetime map[string]uint64, key func(model.PlayEvent) string) RankingSet {
	latest := time.Now().UTC()
	if len(events) > 0 {
		latest = events[len(events)-1].Timestamp
	}
	shortCutoff := latest.Add(-shortWindow)
	mediumCutoff := latest.Add(-mediumWindow)

	shortMs := make(map[string]uint64)
	mediumMs := make(map[string]uint64)
	for _, ev := range events {
		k := key(ev)
		if ev.Timestamp.After(shortCutoff) {
			shortMs[k] += ev.MsPlayed
		}
		if ev.Timestamp.After(mediumCutoff) {
			mediumMs[k] += ev.MsPlayed
		}
	}

	return RankingSet{
		Short:  topKeys(shortMs, rankingLimit),
		Medium: topKeys(mediumMs, rankingLimit),
		Long:   topKeys(lifetime, rankingLimit),
	}
}

// topKeys orders by accumulated duration descending, ties broken by key
// ascending. The tie-break is explicit: map iteration order must never leak
// into the output.
func topKeys(totals map[string]uint64, n int) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
