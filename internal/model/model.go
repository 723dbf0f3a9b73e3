package model

import (
	"fmt"
	"strings"
	"time"
)

// keyMarker prefixes every derived identity key. It is part of the public
// key format consumed by existing clients, so it must not change.
const keyMarker = "csv_"

// PlayEvent is one normalized play from the listening log. Immutable once
// constructed.
type PlayEvent struct {
	Timestamp  time.Time
	TrackName  string
	ArtistName string
	MsPlayed   uint64
	Genres     []string
}

// Artist is one entry in the artist directory.
type Artist struct {
	ID         string
	Name       string
	Genres     []string
	Popularity int
}

// Track is one entry in the track directory. ArtistID is the identity of the
// owning artist.
type Track struct {
	ID         string
	Name       string
	ArtistName string
	ArtistID   string
}

// ArtistKey derives the stable identity key for an artist display name.
// The derivation is a pure string transform: distinct names that normalize
// to the same key are one entity. That collision is accepted, not detected.
func ArtistKey(artistName string) string {
	return keyMarker + slug(artistName)
}

// TrackKey derives the stable identity key for a (track, artist) pair.
func TrackKey(trackName, artistName string) string {
	return keyMarker + slug(fmt.Sprintf("%s - %s", trackName, artistName))
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
