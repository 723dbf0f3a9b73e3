package stats

import (
	"sort"

	"github.com/fidlr/playstats/internal/model"
)

const (
	// relatedWindowSize is the positional co-occurrence window: artists
	// played within 50 consecutive events of each other count as related.
	relatedWindowSize = 50

	relatedLimit = 20
)

// RelatedArtists builds the artist co-occurrence graph. A fixed-size window
// slides over the chronological event sequence one event at a time; every
// unordered pair of distinct artists sharing a window scores one point, in
// both directions. Each artist keeps its top 20 partners by score.
//
// A sequence shorter than the window produces exactly one window; zero or
// one events produce an empty graph.
func RelatedArtists(events []model.PlayEvent) map[string][]string {
	graph := make(map[string][]string)
	if len(events) < 2 {
		return graph
	}

	keys := make([]string, len(events))
	for i, ev := range events {
		keys[i] = model.ArtistKey(ev.ArtistName)
	}

	// The window membership is a multiset maintained incrementally; only
	// the pair enumeration itself is quadratic in the distinct-artist
	// count per window.
	inWindow := make(map[string]int)
	end := relatedWindowSize
	if end > len(keys) {
		end = len(keys)
	}
	for _, k := range keys[:end] {
		inWindow[k]++
	}

	lastStart := len(keys) - relatedWindowSize
	if lastStart < 0 {
		lastStart = 0
	}

	scores := make(map[string]map[string]uint32)
	distinct := make([]string, 0, relatedWindowSize)
	for start := 0; ; start++ {
		distinct = distinct[:0]
		for k := range inWindow {
			distinct = append(distinct, k)
		}
		for i := 0; i < len(distinct); i++ {
			for j := i + 1; j < len(distinct); j++ {
				bump(scores, distinct[i], distinct[j])
				bump(scores, distinct[j], distinct[i])
			}
		}

		if start == lastStart {
			break
		}
		leaving := keys[start]
		inWindow[leaving]--
		if inWindow[leaving] == 0 {
			delete(inWindow, leaving)
		}
		inWindow[keys[start+relatedWindowSize]]++
	}

	for artist, partners := range scores {
		ranked := make([]string, 0, len(partners))
		for partner := range partners {
			ranked = append(ranked, partner)
		}
		sort.Slice(ranked, func(i, j int) bool {
			if partners[ranked[i]] != partners[ranked[j]] {
				return partners[ranked[i]] > partners[ranked[j]]
			}
			return ranked[i] < ranked[j]
		})
		if len(ranked) > relatedLimit {
			ranked = ranked[:relatedLimit]
		}
		graph[artist] = ranked
	}
	return graph
}

func bump(scores map[string]map[string]uint32, from, to string) {
	partners, ok := scores[from]
	if !ok {
		partners = make(map[string]uint32)
		scores[from] = partners
	}
	partners[to]++
}
