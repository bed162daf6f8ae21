// Package trie is a persistent byte oriented trie index layered on a
// sorted key-value store, giving durable insert/lookup of multi valued
// keys without holding the whole structure in memory.
//
// Every byte of a key is one edge; each node carries a 256 slot edge
// table and, once a key has been inserted, an append only value cell.
// Nodes are read lazily through a write through cache; value cells bypass
// the cache and go straight to the store.
//
// One engine instance is not safe for concurrent mutation: allocating a
// node reads the node counter, picks the next index and persists the
// counter non-atomically, so callers serialize access, for example behind
// a mutex they own. Engines over the same namespace in other processes
// share durable bytes but never this engine's memory.
package trie

import (
	"banyan.lol/store"
	"banyan.lol/trie/cache"
	"banyan.lol/trie/cell"
	"banyan.lol/trie/keyspace"
	"banyan.lol/trie/metadata"
	"banyan.lol/trie/node"
)

// T is a trie engine bound to one namespace of a backing store.
type T struct {
	store store.I
	keys  *keyspace.T
	cache *cache.T
	data  *metadata.T
}

// New binds a trie engine to a namespace prefix of the provided store. It
// fails with keyspace.ErrPrefixTooLong before touching the store if the
// prefix is oversized, loads the metadata record (absent means a fresh
// namespace), and creates the root node if this is the first open. The
// root is node 0, always exists and is exempt from the node counter.
func New[V by | st](s store.I, prefix V) (t *T, err er) {
	var k *keyspace.T
	if k, err = keyspace.New(by(prefix)); err != nil {
		return
	}
	t = &T{store: s, keys: k, cache: cache.New(s, k), data: &metadata.T{}}
	var val by
	if val, err = s.Get(k.Metadata()); chk.E(err) {
		return nil, err
	}
	if val != nil {
		if _, err = t.data.UnmarshalBinary(val); chk.E(err) {
			return nil, err
		}
	}
	var root *node.T
	if root, err = t.cache.Get(0); chk.E(err) {
		return nil, err
	}
	if root == nil {
		log.D.F("creating root node for namespace %q", prefix)
		if err = t.cache.Put(0, node.New(0)); chk.E(err) {
			return nil, err
		}
	}
	return
}

// NodeCount reports how many nodes beyond the root have been allocated in
// this namespace.
func (t *T) NodeCount() (n uint64) { return t.data.NodeCount }

// Insert appends value to the values recorded for key, creating any nodes
// along the key's path that do not exist yet. Any storage error is fatal
// to the call and propagated, never retried; committed nodes stay intact,
// at worst one freshly allocated node is left unreachable.
func (t *T) Insert(key, value by) (err er) {
	n := uint64(0)
	var current *node.T
	if current, err = t.cache.Get(n); chk.E(err) {
		return
	}
	for _, b := range key {
		if m, ok := current.Edge(b); ok {
			if current, err = t.descend(b, m); chk.E(err) {
				return
			}
			n = m
			continue
		}
		m := t.data.NodeCount + 1
		t.data.NodeCount = m
		child := node.New(b)
		// the child goes to storage before the parent edge referencing
		// it: a crash mid allocation can only leave the child orphaned,
		// never an edge pointing at a missing node.
		if err = t.cache.Put(m, child); chk.E(err) {
			return
		}
		current.SetEdge(b, m)
		if err = t.cache.Put(n, current); chk.E(err) {
			return
		}
		n = m
		current = child
	}
	if err = t.putMetadata(); chk.E(err) {
		return
	}
	return t.appendValue(n, value)
}

// Get returns the cell holding every value previously inserted for exactly
// this key, in insertion order. A key never inserted, or whose path leaves
// the trie at any byte, yields an empty cell immediately; absence is a
// normal outcome, not an error. There are no partial match semantics.
func (t *T) Get(key by) (c *cell.T, err er) {
	n := uint64(0)
	var current *node.T
	if current, err = t.cache.Get(n); chk.E(err) {
		return
	}
	for _, b := range key {
		m, ok := current.Edge(b)
		if !ok {
			return cell.NewFrom(nil), nil
		}
		if current, err = t.descend(b, m); chk.E(err) {
			return
		}
		n = m
	}
	var val by
	if val, err = t.store.Get(t.keys.Values(n)); chk.E(err) {
		return
	}
	return cell.NewFrom(val), nil
}

// Flush asks the backing store to force durability of the writes issued so
// far. It implies nothing about cache coherence beyond what Get and Put
// already guarantee.
func (t *T) Flush() (err er) { return t.store.Flush(true) }

// descend loads the node an edge points at. An edge is only ever persisted
// after its target, so a missing target means the stored records are
// corrupt.
func (t *T) descend(b byte, m uint64) (nd *node.T, err er) {
	if nd, err = t.cache.Get(m); chk.E(err) {
		return
	}
	if nd == nil {
		err = errorf.E("%w: edge %x references missing node %d",
			node.ErrCorruptRecord, b, m)
	}
	return
}

// putMetadata persists the node counter under the bare namespace key.
func (t *T) putMetadata() (err er) {
	var val by
	if val, err = t.data.MarshalBinary(make(by, 0, metadata.Len)); chk.E(err) {
		return
	}
	if err = t.store.Put(t.keys.Metadata(), val); chk.E(err) {
		return
	}
	return
}

// appendValue does a read-append-write cycle on the value cell of node n,
// bypassing the node cache.
func (t *T) appendValue(n uint64, value by) (err er) {
	key := t.keys.Values(n)
	var val by
	if val, err = t.store.Get(key); chk.E(err) {
		return
	}
	c := cell.NewFrom(val)
	c.Append(value)
	if err = t.store.Put(key, c.Bytes()); chk.E(err) {
		return
	}
	return
}
