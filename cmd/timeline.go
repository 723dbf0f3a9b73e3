package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [from] [to (optional)]",
	Short: "Shows artists and tracks first heard in the given time period",
	Long:  `Uses the specified date or date range. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTimeline(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

type timelineEvent struct {
	date time.Time
	kind string
	name string
}

func printTimeline(out io.Writer, args []string) error {
	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return err
	}

	snap, err := buildSnapshot()
	if err != nil {
		return err
	}

	var events []timelineEvent
	for key, firstSeen := range snap.FirstSeen.Artists {
		if inRange(firstSeen, start, end) {
			events = append(events, timelineEvent{
				date: firstSeen,
				kind: "artist",
				name: snap.Artists[key].Name,
			})
		}
	}
	for key, firstSeen := range snap.FirstSeen.Tracks {
		if inRange(firstSeen, start, end) {
			track := snap.Tracks[key]
			events = append(events, timelineEvent{
				date: firstSeen,
				kind: "track",
				name: fmt.Sprintf("%s - %s", track.Name, track.ArtistName),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].date.Equal(events[j].date) {
			return events[i].date.Before(events[j].date)
		}
		return events[i].name < events[j].name
	})

	rows := [][]string{{"Date", "Type", "Name"}}
	for _, ev := range events {
		rows = append(rows, []string{ev.date.Format("2006-01-02"), ev.kind, ev.name})
	}
	fmt.Fprint(out, renderTable(rows, fmt.Sprintf("%d first listens between %s and %s.",
		len(events), start.Format("2006-01-02"), end.Format("2006-01-02"))))
	return nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
