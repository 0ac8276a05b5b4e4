package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/tavlit/mekomit/core"
)

// Key prefixes for different data types
const (
	itemRecordPrefix   = "itmrec"
	itemOrderPrefix    = "itmord"
	itemOrderSeq       = "itmordseq"
	regionRecordPrefix = "regrec"
	regionOrderPrefix  = "regord"
	regionOrderSeq     = "regordseq"
)

// makeItemKey generates a key for an item by ID.
func makeItemKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", itemRecordPrefix, id))
}

// makeItemOrderKey generates a composite key for the insertion-order index.
// Format: prefix:ordinal
func makeItemOrderKey(ordinal uint64) []byte {
	return makeOrderKey(itemOrderPrefix, ordinal)
}

// makeRegionKey generates a key for a region by ID.
func makeRegionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", regionRecordPrefix, id))
}

// makeRegionOrderKey generates a composite key for the insertion-order index.
// Format: prefix:ordinal
func makeRegionOrderKey(ordinal uint64) []byte {
	return makeOrderKey(regionOrderPrefix, ordinal)
}

func makeOrderKey(prefix string, ordinal uint64) []byte {
	prefixBytes := []byte(prefix + ":")
	prefixSize := len(prefixBytes)
	buf := make([]byte, prefixSize+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}
