package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fidlr/playstats/internal/packing"
	"github.com/fidlr/playstats/internal/snapshot"
)

var packOut string

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Writes the relationship graph in its packed binary form",
	Long: `Assigns dense internal ids to every artist (ascending by identity key)
and writes the co-occurrence adjacency lists in the packed wire encoding.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := writePackedRelationships(packOut)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&packOut, "out", "o", "relationships.bin", "output file")
}

func writePackedRelationships(path string) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}

	packed, err := packing.Pack(adjacencyLists(snap))
	if err != nil {
		return fmt.Errorf("packing relationships: %w", err)
	}

	if err := os.WriteFile(path, packed, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %d bytes for %d artists to %s\n", len(packed), len(snap.Artists), path)
	return nil
}

// adjacencyLists converts the identity-keyed relationship graph to dense
// internal ids. Both the list order and the id assignment follow the
// ascending artist key order, so the encoding is reproducible.
func adjacencyLists(snap *snapshot.Snapshot) [][]uint32 {
	keys := snap.ArtistKeys()
	ids := make(map[string]uint32, len(keys))
	for i, key := range keys {
		ids[key] = uint32(i)
	}

	lists := make([][]uint32, len(keys))
	for i, key := range keys {
		partners := snap.Related[key]
		list := make([]uint32, 0, len(partners))
		for _, partner := range partners {
			list = append(list, ids[partner])
		}
		lists[i] = list
	}
	return lists
}
