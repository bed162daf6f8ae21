// Package cell implements the append only multi value log attached to a
// trie node.
//
// A cell is a bare concatenation of [ 4 bytes LE length ][ payload ]
// records with no overall framing. Payloads are opaque; any text encoding
// is the caller's concern. Records are never reordered or removed.
package cell

import (
	"encoding/binary"
)

// LengthLen is the width of the length field prefixing each record.
const LengthLen = 4

// T holds the raw encoded log of one node's values.
type T struct {
	b by
}

// NewFrom wraps a buffer read from storage. A nil or empty buffer is a
// valid cell with no records.
func NewFrom(b by) (c *T) { return &T{b: b} }

// Append adds v as the next record of the cell.
func (c *T) Append(v by) {
	c.b = binary.LittleEndian.AppendUint32(c.b, uint32(len(v)))
	c.b = append(c.b, v...)
}

// Bytes returns the raw encoded log for writing back to storage.
func (c *T) Bytes() (b by) { return c.b }

// Values drains a fresh iterator into a slice, in insertion order.
func (c *T) Values() (vs []by) {
	it := c.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		vs = append(vs, v)
	}
}

// Len counts the complete records in the cell.
func (c *T) Len() (n no) {
	it := c.Iter()
	for {
		if _, ok := it.Next(); !ok {
			return
		}
		n++
	}
}

// Iter returns an iterator over the records captured in the cell at this
// moment. Appends made afterwards are not observed. Call again to restart.
func (c *T) Iter() (it *Iter) { return &Iter{b: c.b} }

// Iter walks the records of a captured cell buffer.
type Iter struct {
	b   by
	pos no
}

// Next returns the next complete record. ok is false once fewer than
// LengthLen bytes remain at the cursor, or fewer payload bytes remain than
// the declared length. A truncated trailing record, as left by a crash mid
// append, ends the sequence; it is never an error, and every earlier
// complete record stays valid. A length field ending exactly at the end of
// the buffer declares a zero length record and is yielded.
func (it *Iter) Next() (v by, ok bo) {
	if it.pos+LengthLen > len(it.b) {
		return
	}
	l := no(binary.LittleEndian.Uint32(it.b[it.pos:]))
	if it.pos+LengthLen+l > len(it.b) {
		return
	}
	it.pos += LengthLen
	v = it.b[it.pos : it.pos+l]
	it.pos += l
	ok = true
	return
}
