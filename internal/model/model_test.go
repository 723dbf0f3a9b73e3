package model

import "testing"

func TestArtistKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Artist X", "csv_artist_x"},
		{"MUSE", "csv_muse"},
		{"a b c", "csv_a_b_c"},
		{"already_slugged", "csv_already_slugged"},
	}
	for _, c := range cases {
		if got := ArtistKey(c.name); got != c.want {
			t.Errorf("ArtistKey(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestTrackKey(t *testing.T) {
	if got := TrackKey("Song A", "Artist X"); got != "csv_song_a_-_artist_x" {
		t.Errorf("TrackKey = %q", got)
	}
}

func TestKeyCollisionIsAccepted(t *testing.T) {
	// Distinct display names that normalize identically are one entity.
	if ArtistKey("Artist X") != ArtistKey("artist x") {
		t.Error("case-differing names should share an identity key")
	}
	if ArtistKey("Artist X") != ArtistKey("Artist_X") {
		t.Error("space and underscore should normalize to the same key")
	}
}
