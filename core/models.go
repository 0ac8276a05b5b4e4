package core

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Labels is an ordered list of category labels. Catalogue sources encode
// these fields as either a single string or a list of strings; Labels is the
// explicit representation of both shapes. A single string decodes as a
// one-element list, and any other shape decodes as absent rather than as an
// error.
type Labels []string

var _ json.Unmarshaler = (*Labels)(nil)

// UnmarshalJSON implements the string-or-list boundary decoding.
func (l *Labels) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = Labels{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = Labels(list)
		return nil
	}

	// Unexpected shapes are treated as absent, never as an error.
	*l = nil
	return nil
}

// Item represents a single location-tagged catalogue record.
// Any of the free-text fields may be empty. The search core never mutates
// an Item; it only reads normalized projections of its text fields.
type Item struct {
	Id          ID
	Name        string
	Description string
	Location    string
	Types       Labels
	Tags        Labels
	InsertedAt  time.Time // When the record was inserted into the store
	UpdatedAt   time.Time // When the record was last updated
}

// Fingerprint returns the text the item's content-based ID is derived from.
func (i *Item) Fingerprint() string {
	return i.Name + "\x00" + i.Description + "\x00" + i.Location
}

// Region represents a geographic grouping of settlements used for
// geography-aware score boosting.
type Region struct {
	Id          ID
	Name        string
	Settlements []string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Fingerprint returns the text the region's content-based ID is derived from.
func (r *Region) Fingerprint() string {
	return r.Name
}
