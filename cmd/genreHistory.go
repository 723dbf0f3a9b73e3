package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var genreHistoryNumber int

var genreHistoryCmd = &cobra.Command{
	Use:   "genre-history",
	Short: "Shows how genre listening weight shifted over time",
	Long: `Bins the log into month-ish buckets and shows each bucket's top genres,
weighted by play duration. A new bucket opens when more than 30 listening
days have passed, so bucket widths follow listening gaps rather than
calendar months.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printGenreHistory(os.Stdout, genreHistoryNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genreHistoryCmd)

	genreHistoryCmd.Flags().IntVarP(&genreHistoryNumber, "number", "n", 5, "number of genres to show per bucket")
}

func printGenreHistory(out io.Writer, perBucket int) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}

	rows := [][]string{{"Bucket", "Top Genres"}}
	for _, bucket := range snap.GenreTrend {
		genres := make([]string, 0, len(bucket.Weight))
		for genre := range bucket.Weight {
			genres = append(genres, genre)
		}
		sort.Slice(genres, func(i, j int) bool {
			if bucket.Weight[genres[i]] != bucket.Weight[genres[j]] {
				return bucket.Weight[genres[i]] > bucket.Weight[genres[j]]
			}
			return genres[i] < genres[j]
		})
		if len(genres) > perBucket {
			genres = genres[:perBucket]
		}

		labels := make([]string, len(genres))
		for i, genre := range genres {
			labels[i] = fmt.Sprintf("%s (%.0fm)", genre, bucket.Weight[genre]/60000)
		}
		rows = append(rows, []string{
			bucket.Start.Format("2006-01-02"),
			strings.Join(labels, ", "),
		})
	}

	fmt.Fprint(out, renderTable(rows, fmt.Sprintf("%d genre buckets.", len(snap.GenreTrend))))
	return nil
}
