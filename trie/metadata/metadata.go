// Package metadata implements the per namespace trie metadata record,
// stored under the bare namespace prefix.
//
// Layout, version 1: [ 1 byte version ][ 8 bytes LE node count ].
package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"

	banyan "banyan.lol"
)

// Version identifies the record layout.
const Version = 1

// Len is the exact encoded length of a metadata record.
const Len = 9

// ErrCorruptRecord means stored bytes failed to parse against the record
// layout.
var ErrCorruptRecord = errors.New("corrupt metadata record")

// T is the trie metadata. NodeCount counts the nodes allocated so far,
// excluding the root, which always exists; the next allocation takes index
// NodeCount+1 and indices are never reused.
type T struct {
	NodeCount uint64
}

var _ banyan.Binary = (*T)(nil)

// MarshalBinary appends the encoded metadata record to dst.
func (d *T) MarshalBinary(dst by) (b by, err er) {
	b = dst
	b = append(b, Version)
	b = binary.LittleEndian.AppendUint64(b, d.NodeCount)
	return
}

// UnmarshalBinary decodes a metadata record from the front of b and
// returns the remainder.
func (d *T) UnmarshalBinary(b by) (r by, err er) {
	if len(b) < Len {
		err = fmt.Errorf("%w: %d bytes, need %d", ErrCorruptRecord, len(b), Len)
		return
	}
	if b[0] != Version {
		err = fmt.Errorf("%w: unknown version %d", ErrCorruptRecord, b[0])
		return
	}
	d.NodeCount = binary.LittleEndian.Uint64(b[1:])
	r = b[Len:]
	return
}
