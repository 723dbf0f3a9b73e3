package packing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestPackKnownLayout(t *testing.T) {
	// Two lists [3,1] and [2]: two length bytes, two pad bytes, then the
	// first list's ids ascending, then the second's.
	packed, err := Pack([][]uint32{{3, 1}, {2}})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	want := []byte{
		0x02, 0x01, // lengths
		0x00, 0x00, // padding to a 4-byte boundary
		0x01, 0x00, 0x00, 0x00, // 1
		0x03, 0x00, 0x00, 0x00, // 3
		0x02, 0x00, 0x00, 0x00, // 2
	}
	if !bytes.Equal(packed, want) {
		t.Errorf("packed = % x, want % x", packed, want)
	}
}

func TestPackLengthFormula(t *testing.T) {
	// k lists with m total members pack to k + pad + 4m bytes,
	// pad = (4 - k%4) % 4.
	cases := [][]int{
		{},
		{0},
		{1, 2, 3},
		{5, 0, 7, 1},
		{10, 10, 10, 10, 10},
		{255},
	}
	for _, sizes := range cases {
		lists := make([][]uint32, len(sizes))
		members := 0
		for i, size := range sizes {
			lists[i] = make([]uint32, size)
			for j := range lists[i] {
				lists[i][j] = uint32(j * 7)
			}
			members += size
		}

		packed, err := Pack(lists)
		if err != nil {
			t.Fatalf("Pack(%v): %v", sizes, err)
		}
		k := len(sizes)
		pad := (4 - k%4) % 4
		if want := k + pad + 4*members; len(packed) != want {
			t.Errorf("Pack(%v) = %d bytes, want %d", sizes, len(packed), want)
		}
	}
}

func TestPackSortsIdsWithoutMutatingInput(t *testing.T) {
	ids := []uint32{9, 4, 7}
	packed, err := Pack([][]uint32{ids})
	if err != nil {
		t.Fatal(err)
	}

	if ids[0] != 9 || ids[1] != 4 || ids[2] != 7 {
		t.Errorf("caller's list was mutated: %v", ids)
	}
	body := packed[4:] // 1 length byte + 3 pad bytes
	got := []uint32{
		binary.LittleEndian.Uint32(body[0:]),
		binary.LittleEndian.Uint32(body[4:]),
		binary.LittleEndian.Uint32(body[8:]),
	}
	if got[0] != 4 || got[1] != 7 || got[2] != 9 {
		t.Errorf("encoded ids = %v, want ascending", got)
	}
}

func TestPackRejectsOverlongList(t *testing.T) {
	_, err := Pack([][]uint32{make([]uint32, 256)})
	if !errors.Is(err, ErrListTooLong) {
		t.Errorf("err = %v, want ErrListTooLong", err)
	}
}

func TestPackDecodeRoundTrip(t *testing.T) {
	lists := [][]uint32{{40, 10, 30}, {}, {7}, {2, 1}, {100}}
	packed, err := Pack(lists)
	if err != nil {
		t.Fatal(err)
	}

	// Structural inverse: read lengths, skip padding, read ids.
	lengths := packed[:len(lists)]
	pad := (4 - len(lists)%4) % 4
	offset := len(lists) + pad
	for i, length := range lengths {
		var decoded []uint32
		for j := 0; j < int(length); j++ {
			decoded = append(decoded, binary.LittleEndian.Uint32(packed[offset:]))
			offset += 4
		}
		for j := 1; j < len(decoded); j++ {
			if decoded[j-1] > decoded[j] {
				t.Errorf("list %d not ascending: %v", i, decoded)
			}
		}
		if len(decoded) != len(lists[i]) {
			t.Errorf("list %d decoded %d ids, want %d", i, len(decoded), len(lists[i]))
		}
	}
	if offset != len(packed) {
		t.Errorf("decoded %d bytes, packed %d", offset, len(packed))
	}
}
