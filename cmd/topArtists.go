package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fidlr/playstats/internal/snapshot"
)

var topArtistsWindow string
var topArtistsLimit int

var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Shows the top artists by play duration",
	Long: `Ranks artists by accumulated play duration within a trailing window.
Windows are relative to the latest event in the log, not the current time.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, topArtistsWindow, topArtistsLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().StringVarP(&topArtistsWindow, "window", "w", "long", "ranking window: short, medium, or long")
	topArtistsCmd.Flags().IntVarP(&topArtistsLimit, "number", "n", 25, "number of results to show")
}

func printTopArtists(out io.Writer, window string, limit int) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}
	fmt.Fprint(out, topArtistsReport(snap, window, limit))
	return nil
}

func topArtistsReport(snap *snapshot.Snapshot, window string, limit int) string {
	label, err := windowLabel(window)
	if err != nil {
		return err.Error() + "\n"
	}

	keys := snap.ArtistRankings.Window(window)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	rows := [][]string{{"#", "Artist", "Genres"}}
	for i, key := range keys {
		artist := snap.Artists[key]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			artist.Name,
			strings.Join(artist.Genres, ", "),
		})
	}
	return renderTable(rows, fmt.Sprintf("Top artists, %s.", label))
}
