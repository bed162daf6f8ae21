package sett

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// Get returns the value stored at key, or nil with a nil error when the key
// has never been written.
func (r *T) Get(key by) (val by, err er) {
	if err = r.View(func(txn *badger.Txn) (err er) {
		var item *badger.Item
		if item, err = txn.Get(key); err != nil {
			return
		}
		val, err = item.ValueCopy(nil)
		return
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		chk.E(err)
		return nil, err
	}
	return
}

// Put stores val at key before returning.
func (r *T) Put(key, val by) (err er) {
	if err = r.Update(func(txn *badger.Txn) (err er) {
		return txn.Set(key, val)
	}); chk.E(err) {
		return
	}
	return
}

// Flush syncs badger's write ahead state to disk when durable is true;
// badger drains its own buffers at the end of each Update so there is
// nothing further to do otherwise.
func (r *T) Flush(durable bo) (err er) {
	if !durable {
		return
	}
	if err = r.DB.Sync(); chk.E(err) {
		return
	}
	return
}
