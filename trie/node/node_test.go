package node_test

import (
	"errors"
	"testing"

	"lukechampine.com/frand"

	"banyan.lol/trie/node"
)

func TestRoundtrip(t *testing.T) {
	for range 100 {
		n := node.New(byte(frand.Intn(256)))
		for range frand.Intn(32) {
			n.SetEdge(byte(frand.Intn(256)), 1+uint64(frand.Intn(1<<30)))
		}
		b, err := n.MarshalBinary(nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != node.Len {
			t.Fatalf("expected %d byte record got %d", node.Len, len(b))
		}
		n2 := &node.T{}
		rem, err := n2.UnmarshalBinary(b)
		if err != nil {
			t.Fatal(err)
		}
		if len(rem) != 0 {
			t.Fatalf("expected no remainder got %d bytes", len(rem))
		}
		if n2.EdgeByte != n.EdgeByte {
			t.Fatalf("expected edge byte %x got %x", n.EdgeByte, n2.EdgeByte)
		}
		if n2.Edges != n.Edges {
			t.Fatal("edge tables differ after roundtrip")
		}
	}
}

func TestShortRecord(t *testing.T) {
	n := node.New('a')
	b, err := n.MarshalBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, cut := range []int{0, 1, node.Len / 2, node.Len - 1} {
		n2 := &node.T{}
		if _, err = n2.UnmarshalBinary(b[:cut]); !errors.Is(err,
			node.ErrCorruptRecord) {
			t.Fatalf("cut %d: expected ErrCorruptRecord got %v", cut, err)
		}
		if n2.EdgeByte != 0 {
			t.Fatal("failed decode partially filled the node")
		}
	}
}

func TestUnknownVersion(t *testing.T) {
	n := node.New('a')
	b, err := n.MarshalBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	b[0] = node.Version + 1
	if _, err = (&node.T{}).UnmarshalBinary(b); !errors.Is(err,
		node.ErrCorruptRecord) {
		t.Fatalf("expected ErrCorruptRecord got %v", err)
	}
}

func TestEdges(t *testing.T) {
	n := node.New('k')
	if _, ok := n.Edge('x'); ok {
		t.Fatal("fresh node has an edge set")
	}
	n.SetEdge('x', 42)
	m, ok := n.Edge('x')
	if !ok || m != 42 {
		t.Fatalf("expected 42 got %d %v", m, ok)
	}
	if _, ok = n.Edge('y'); ok {
		t.Fatal("unrelated edge set")
	}
}
