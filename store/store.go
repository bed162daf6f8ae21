// Package store defines the contract the trie engine requires from its
// backing key-value store: atomic single-key get/put and a durability
// barrier. No ordering, scanning or transaction API is used.
package store

type (
	bo = bool
	by = []byte
	er = error
)

// I is the backing store handle. One instance is owned by the caller and
// passed to each engine by reference; engines over the same store share
// durable bytes but never in-memory state. Transient I/O recovery is the
// store's concern, a returned error is treated as fatal by callers.
type I interface {
	// Get returns the value stored at key, or nil with a nil error when
	// nothing has ever been written there. Absence is not an error.
	Get(key by) (val by, err er)
	// Put stores val at key, atomically for that single key, before
	// returning.
	Put(key, val by) (err er)
	// Flush forces durability of every write issued so far. When durable
	// is false the store may limit itself to draining its own buffers.
	Flush(durable bo) (err er)
}
