// Package cache is the write through node cache sitting between the trie
// engine and the backing store.
//
// The cache exclusively owns the in-memory copy of every node it has seen;
// the store holds the durable copy. There is no eviction, no capacity
// bound and no cross instance invalidation: one engine owns one cache
// under the single writer model.
package cache

import (
	"banyan.lol/store"
	"banyan.lol/trie/keyspace"
	"banyan.lol/trie/node"
)

// T maps node indices to decoded nodes, reading through to the backing
// store on a miss and writing through on every put.
type T struct {
	store store.I
	keys  *keyspace.T
	nodes map[uint64]*node.T
}

// New creates an empty cache over a store and a namespace keyspace.
func New(s store.I, k *keyspace.T) (c *T) {
	return &T{store: s, keys: k, nodes: make(map[uint64]*node.T)}
}

// Get returns the node at index n, decoding it from storage on a miss. A
// nil node with a nil error means no such node exists; the engine uses
// that as the normal signal for an untraversed edge, it is not a fault.
func (c *T) Get(n uint64) (nd *node.T, err er) {
	var ok bo
	if nd, ok = c.nodes[n]; ok {
		return
	}
	var val by
	if val, err = c.store.Get(c.keys.Node(n)); chk.E(err) {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	nd = &node.T{}
	var rem by
	if rem, err = nd.UnmarshalBinary(val); chk.E(err) {
		return nil, err
	}
	if len(rem) > 0 {
		return nil, errorf.E("%w: %d trailing bytes after node %d",
			node.ErrCorruptRecord, len(rem), n)
	}
	c.nodes[n] = nd
	return
}

// Put overwrites the in-memory entry for n, then encodes and writes it
// through to storage before returning; callers never observe success until
// both layers hold the new value. On a storage failure the map stays ahead
// of the store for this one node until the process exits; a freshly opened
// engine re-reads from storage and is unaffected.
func (c *T) Put(n uint64, nd *node.T) (err er) {
	c.nodes[n] = nd
	var val by
	if val, err = nd.MarshalBinary(make(by, 0, node.Len)); chk.E(err) {
		return
	}
	if err = c.store.Put(c.keys.Node(n), val); chk.E(err) {
		return
	}
	return
}

// Len reports how many nodes are held in memory.
func (c *T) Len() (n no) { return len(c.nodes) }
