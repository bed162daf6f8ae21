package keyspace_test

import (
	"bytes"
	"errors"
	"testing"

	"lukechampine.com/frand"

	"banyan.lol/trie/keyspace"
)

func TestKeyFamilies(t *testing.T) {
	k, err := keyspace.New("sometrie")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(k.Metadata(), []byte("sometrie")) {
		t.Fatalf("metadata key is the bare prefix, got %q", k.Metadata())
	}
	n := k.Node(1)
	if len(n) != len("sometrie")+keyspace.IndexLen {
		t.Fatalf("node key length %d", len(n))
	}
	v := k.Values(1)
	if !bytes.Equal(v[:len(n)], n) ||
		!bytes.Equal(v[len(n):], []byte(keyspace.ValueSuffix)) {
		t.Fatalf("values key is node key plus suffix, got %q", v)
	}
	// the three families never collide with each other
	seen := map[string]bool{string(k.Metadata()): true}
	for i := range uint64(1000) {
		for _, key := range [][]byte{k.Node(i), k.Values(i)} {
			if seen[string(key)] {
				t.Fatalf("key collision at index %d: %q", i, key)
			}
			seen[string(key)] = true
		}
	}
}

func TestDistinctPrefixes(t *testing.T) {
	one, err := keyspace.New("one")
	if err != nil {
		t.Fatal(err)
	}
	two, err := keyspace.New("two")
	if err != nil {
		t.Fatal(err)
	}
	for i := range uint64(100) {
		if bytes.Equal(one.Node(i), two.Node(i)) ||
			bytes.Equal(one.Values(i), two.Values(i)) {
			t.Fatalf("prefixes collide at index %d", i)
		}
	}
}

func TestPrefixTooLong(t *testing.T) {
	if _, err := keyspace.New(frand.Bytes(keyspace.MaxPrefixLen)); err != nil {
		t.Fatalf("max length prefix rejected: %v", err)
	}
	_, err := keyspace.New(frand.Bytes(keyspace.MaxPrefixLen + 1))
	if !errors.Is(err, keyspace.ErrPrefixTooLong) {
		t.Fatalf("expected ErrPrefixTooLong got %v", err)
	}
}

func TestPrefixIsCopied(t *testing.T) {
	p := []byte("mutable")
	k, err := keyspace.New(p)
	if err != nil {
		t.Fatal(err)
	}
	p[0] = 'X'
	if !bytes.Equal(k.Metadata(), []byte("mutable")) {
		t.Fatal("keyspace aliased the caller's prefix slice")
	}
}
