// Package packing serializes artist relationship adjacency lists into the
// dense binary form served to graph clients.
package packing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

// ErrListTooLong means an adjacency list exceeded the 255-entry limit the
// one-byte length header can express. That is a caller contract violation;
// the codec fails loudly rather than truncating.
var ErrListTooLong = errors.New("adjacency list longer than 255 entries")

// Pack encodes adjacency lists of artist internal ids. Layout, little-endian
// throughout:
//
//  1. one byte per list, in input order: that list's length
//  2. 0-3 zero bytes so the count so far is a multiple of 4
//  3. per list, in input order: its ids sorted ascending, each as 4 bytes
//
// Ids are sorted before encoding to help downstream compression. Existing
// consumers depend on the exact bytes, so the sort is not optional.
func Pack(lists [][]uint32) ([]byte, error) {
	total := 0
	for _, ids := range lists {
		if len(ids) > 255 {
			return nil, fmt.Errorf("%w: got %d", ErrListTooLong, len(ids))
		}
		total += len(ids)
	}

	pad := (4 - len(lists)%4) % 4
	packed := make([]byte, 0, len(lists)+pad+4*total)

	for _, ids := range lists {
		packed = append(packed, byte(len(ids)))
	}
	for i := 0; i < pad; i++ {
		packed = append(packed, 0)
	}

	for _, ids := range lists {
		sorted := slices.Clone(ids)
		slices.Sort(sorted)
		for _, id := range sorted {
			packed = binary.LittleEndian.AppendUint32(packed, id)
		}
	}
	return packed, nil
}
