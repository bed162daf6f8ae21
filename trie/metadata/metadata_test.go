package metadata_test

import (
	"errors"
	"testing"

	"lukechampine.com/frand"

	"banyan.lol/trie/metadata"
)

func TestRoundtrip(t *testing.T) {
	for range 100 {
		d := &metadata.T{NodeCount: frand.Uint64n(1 << 62)}
		b, err := d.MarshalBinary(nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != metadata.Len {
			t.Fatalf("expected %d byte record got %d", metadata.Len, len(b))
		}
		d2 := &metadata.T{}
		rem, err := d2.UnmarshalBinary(b)
		if err != nil {
			t.Fatal(err)
		}
		if len(rem) != 0 {
			t.Fatalf("expected no remainder got %d bytes", len(rem))
		}
		if d2.NodeCount != d.NodeCount {
			t.Fatalf("expected %d got %d", d.NodeCount, d2.NodeCount)
		}
	}
}

func TestShortRecord(t *testing.T) {
	d := &metadata.T{NodeCount: 7}
	b, err := d.MarshalBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = (&metadata.T{}).UnmarshalBinary(b[:metadata.Len-1]); !errors.Is(err,
		metadata.ErrCorruptRecord) {
		t.Fatalf("expected ErrCorruptRecord got %v", err)
	}
}

func TestUnknownVersion(t *testing.T) {
	d := &metadata.T{NodeCount: 7}
	b, err := d.MarshalBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	b[0] = metadata.Version + 1
	if _, err = (&metadata.T{}).UnmarshalBinary(b); !errors.Is(err,
		metadata.ErrCorruptRecord) {
		t.Fatalf("expected ErrCorruptRecord got %v", err)
	}
}
