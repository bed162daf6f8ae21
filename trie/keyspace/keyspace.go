// Package keyspace derives the backing store keys for one trie namespace.
//
// Three disjoint key families are produced from a namespace prefix:
//
//	[ prefix ]                                        trie metadata
//	[ prefix ][ 8 bytes LE node index ]               node record
//	[ prefix ][ 8 bytes LE node index ][ "/values" ]  value cell
//
// For one prefix the three families have pairwise distinct lengths, and the
// index field is fixed width, so distinct (prefix, index) pairs never
// collide with each other or with the metadata key.
package keyspace

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// IndexLen is the fixed width of an encoded node index.
const IndexLen = 8

// ValueSuffix follows the node index in a value cell key.
const ValueSuffix = "/values"

// MaxPrefixLen bounds the namespace prefix so the longest derived key fits
// in a kilobyte.
const MaxPrefixLen = 1024 - IndexLen - len(ValueSuffix)

// ErrPrefixTooLong is returned by New, before any I/O has happened, when
// the namespace prefix exceeds MaxPrefixLen.
var ErrPrefixTooLong = errors.New("namespace prefix too long")

// T derives keys for the namespace it was constructed with.
type T struct {
	prefix by
}

// New creates a keyspace for a namespace prefix. The prefix is copied, the
// caller keeps ownership of its slice.
func New[V by | st](prefix V) (k *T, err er) {
	p := by(prefix)
	if len(p) > MaxPrefixLen {
		err = fmt.Errorf("%w: %d bytes, max %d", ErrPrefixTooLong, len(p),
			MaxPrefixLen)
		return
	}
	k = &T{prefix: append(by{}, p...)}
	return
}

// Metadata returns the key the trie metadata record is stored under.
func (k *T) Metadata() (key by) { return k.prefix }

// Node returns the key the node record for index n is stored under.
func (k *T) Node(n uint64) (key by) {
	key = make(by, 0, len(k.prefix)+IndexLen)
	key = append(key, k.prefix...)
	key = binary.LittleEndian.AppendUint64(key, n)
	return
}

// Values returns the key the value cell of node n is stored under.
func (k *T) Values(n uint64) (key by) {
	key = make(by, 0, len(k.prefix)+IndexLen+len(ValueSuffix))
	key = append(key, k.prefix...)
	key = binary.LittleEndian.AppendUint64(key, n)
	key = append(key, ValueSuffix...)
	return
}
