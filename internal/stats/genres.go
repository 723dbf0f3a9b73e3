package stats

import (
	"time"

	"github.com/fidlr/playstats/internal/model"
)

// genreBucketSpan is the listening-day gap that closes a trend bucket.
// Buckets are month-ish, not calendar months: a new one opens when an
// event's day is more than 30 days past the bucket start, so bucket width
// drifts with listening gaps. Consumers depend on these exact bucket
// timestamps, so the rule stays as-is.
const genreBucketSpan = 30 * 24 * time.Hour

// GenreBucket is one slice of the genre trend series: the bucket's start
// (midnight UTC of its first listening day) and the play duration
// accumulated per genre within it.
type GenreBucket struct {
	Start  time.Time
	Weight map[string]float64
}

// GenreTrend bins the event sequence into the chronological genre trend
// series, weighting each genre tag by play duration. Buckets that collect
// no tags are dropped, so a log without genre data yields an empty series.
func GenreTrend(events []model.PlayEvent) []GenreBucket {
	if len(events) == 0 {
		return nil
	}

	var series []GenreBucket
	bucketStart := midnightUTC(events[0].Timestamp)
	weight := make(map[string]float64)

	for _, ev := range events {
		day := midnightUTC(ev.Timestamp)
		if day.After(bucketStart.Add(genreBucketSpan)) {
			if len(weight) > 0 {
				series = append(series, GenreBucket{Start: bucketStart, Weight: weight})
			}
			bucketStart = day
			weight = make(map[string]float64)
		}
		for _, genre := range ev.Genres {
			weight[genre] += float64(ev.MsPlayed)
		}
	}

	if len(weight) > 0 {
		series = append(series, GenreBucket{Start: bucketStart, Weight: weight})
	}
	return series
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
