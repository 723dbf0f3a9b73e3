package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fidlr/playstats/internal/snapshot"
)

var topTracksWindow string
var topTracksLimit int

var topTracksCmd = &cobra.Command{
	Use:   "top-tracks",
	Short: "Shows the top tracks by play duration",
	Long:  `Ranks (track, artist) pairs by accumulated play duration within a trailing window.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopTracks(os.Stdout, topTracksWindow, topTracksLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)

	topTracksCmd.Flags().StringVarP(&topTracksWindow, "window", "w", "long", "ranking window: short, medium, or long")
	topTracksCmd.Flags().IntVarP(&topTracksLimit, "number", "n", 25, "number of results to show")
}

func printTopTracks(out io.Writer, window string, limit int) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}
	fmt.Fprint(out, topTracksReport(snap, window, limit))
	return nil
}

func topTracksReport(snap *snapshot.Snapshot, window string, limit int) string {
	label, err := windowLabel(window)
	if err != nil {
		return err.Error() + "\n"
	}

	keys := snap.TrackRankings.Window(window)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	rows := [][]string{{"#", "Track", "Artist"}}
	for i, key := range keys {
		track := snap.Tracks[key]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			track.Name,
			track.ArtistName,
		})
	}
	return renderTable(rows, fmt.Sprintf("Top tracks, %s.", label))
}
