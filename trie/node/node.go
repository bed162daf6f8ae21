// Package node implements the fixed width trie node record.
//
// Layout, version 1, Len bytes in total:
//
//	[ 1 byte version ][ 1 byte edge byte ][ 256 x 4 byte LE child index ]
//
// A child index slot holding zero means the edge for that byte value is
// unset; node indices are strictly positive. The full 256 slot table costs
// a kilobyte per node but makes edge lookup a single offset, no allocation,
// no search.
package node

import (
	"encoding/binary"
	"errors"
	"fmt"

	banyan "banyan.lol"
)

// Version identifies the record layout.
const Version = 1

// EdgeCount is one slot for every possible byte value.
const EdgeCount = 256

// slotLen is the encoded width of one child index slot.
const slotLen = 4

// Len is the exact encoded length of a node record.
const Len = 2 + EdgeCount*slotLen

// ErrCorruptRecord means stored bytes failed to parse against the record
// layout. Decoding never yields a partially filled node.
var ErrCorruptRecord = errors.New("corrupt node record")

// T is one trie node: the byte on the edge that reaches it, and a table
// mapping each possible next byte to the index of the child reached by it.
//
// An edge slot is set at most once and never cleared or reassigned, which
// is the engine's invariant rather than anything enforced here.
type T struct {
	EdgeByte byte
	Edges    [EdgeCount]uint32
}

var _ banyan.Binary = (*T)(nil)

// New creates a node with no edges, reached by edgeByte in its parent.
func New(edgeByte byte) (n *T) { return &T{EdgeByte: edgeByte} }

// Edge returns the child index reached from byte b, if that edge is set.
func (n *T) Edge(b byte) (m uint64, ok bo) {
	if n.Edges[b] == 0 {
		return
	}
	return uint64(n.Edges[b]), true
}

// SetEdge points byte b at child index m. m must be strictly positive.
func (n *T) SetEdge(b byte, m uint64) { n.Edges[b] = uint32(m) }

// MarshalBinary appends the encoded node record to dst.
func (n *T) MarshalBinary(dst by) (b by, err er) {
	b = dst
	b = append(b, Version, n.EdgeByte)
	for i := range n.Edges {
		b = binary.LittleEndian.AppendUint32(b, n.Edges[i])
	}
	return
}

// UnmarshalBinary decodes a node record from the front of b and returns
// the remainder. A short record or an unknown version fails with
// ErrCorruptRecord and leaves n untouched.
func (n *T) UnmarshalBinary(b by) (r by, err er) {
	if len(b) < Len {
		err = fmt.Errorf("%w: %d bytes, need %d", ErrCorruptRecord, len(b), Len)
		return
	}
	if b[0] != Version {
		err = fmt.Errorf("%w: unknown version %d", ErrCorruptRecord, b[0])
		return
	}
	n.EdgeByte = b[1]
	for i := range n.Edges {
		n.Edges[i] = binary.LittleEndian.Uint32(b[2+i*slotLen:])
	}
	r = b[Len:]
	return
}
