package stats

import (
	"time"

	"github.com/fidlr/playstats/internal/model"
)

// Timeline maps identity keys to the timestamp they were first observed in
// the log.
type Timeline struct {
	Artists map[string]time.Time
	Tracks  map[string]time.Time
}

// FirstSeen walks the ordered event sequence once and records the first
// occurrence of every artist and track identity. Insertion is
// first-write-wins; later occurrences are ignored.
func FirstSeen(events []model.PlayEvent) Timeline {
	timeline := Timeline{
		Artists: make(map[string]time.Time),
		Tracks:  make(map[string]time.Time),
	}
	for _, ev := range events {
		artistKey := model.ArtistKey(ev.ArtistName)
		if _, ok := timeline.Artists[artistKey]; !ok {
			timeline.Artists[artistKey] = ev.Timestamp
		}
		trackKey := model.TrackKey(ev.TrackName, ev.ArtistName)
		if _, ok := timeline.Tracks[trackKey]; !ok {
			timeline.Tracks[trackKey] = ev.Timestamp
		}
	}
	return timeline
}
