// Package banyan is a persistent byte-oriented trie index layered on an
// external sorted key-value store. The trie engine lives in banyan.lol/trie;
// a badger backed implementation of the store contract lives in
// banyan.lol/sett.
package banyan

type Binary interface {
	// MarshalBinary converts the data of the type into binary form, appending
	// it to the provided slice.
	MarshalBinary(dst by) (b by, err er)
	// UnmarshalBinary decodes a binary form of a type back into the runtime
	// form, and returns whatever remains after the type has been decoded out.
	UnmarshalBinary(b by) (r by, err er)
}
