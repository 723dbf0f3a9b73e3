package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fidlr/playstats/internal/model"
)

var relatedCmd = &cobra.Command{
	Use:   "related <artist>",
	Short: "Shows artists listened to close together with the given artist",
	Long: `Relatedness is co-occurrence: artists played within the same stretch of
50 consecutive listens score one point per shared stretch.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printRelated(os.Stdout, args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(relatedCmd)
}

func printRelated(out io.Writer, artistName string) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}

	key := model.ArtistKey(artistName)
	artist, ok := snap.Artists[key]
	if !ok {
		return fmt.Errorf("artist %q not found in the listening log", artistName)
	}

	rows := [][]string{{"#", "Artist", "Genres"}}
	for i, partnerKey := range snap.Related[key] {
		partner := snap.Artists[partnerKey]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			partner.Name,
			strings.Join(partner.Genres, ", "),
		})
	}
	fmt.Fprint(out, renderTable(rows, fmt.Sprintf("Artists related to %s.", artist.Name)))
	return nil
}
