package sett_test

import (
	"bytes"
	"testing"

	"lukechampine.com/frand"

	"banyan.lol/sett"
)

func TestRoundtrip(t *testing.T) {
	r := sett.New(sett.BackendParams{})
	if err := r.Init(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	key, val := frand.Bytes(16), frand.Bytes(64)
	got, err := r.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for a key never written, got %x", got)
	}
	if err = r.Put(key, val); err != nil {
		t.Fatal(err)
	}
	if got, err = r.Get(key); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, val) {
		t.Fatalf("expected %x got %x", val, got)
	}
	if err = r.Flush(true); err != nil {
		t.Fatal(err)
	}
}

func TestReopen(t *testing.T) {
	path := t.TempDir()
	key, val := []byte("key"), []byte("value")
	{
		r := sett.New(sett.BackendParams{})
		if err := r.Init(path); err != nil {
			t.Fatal(err)
		}
		if err := r.Put(key, val); err != nil {
			t.Fatal(err)
		}
		if err := r.Flush(true); err != nil {
			t.Fatal(err)
		}
		if err := r.Close(); err != nil {
			t.Fatal(err)
		}
	}
	r := sett.New(sett.BackendParams{})
	if err := r.Init(path); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	got, err := r.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, val) {
		t.Fatalf("expected %x after reopen, got %x", val, got)
	}
}

func TestOverwrite(t *testing.T) {
	r := sett.New(sett.BackendParams{})
	if err := r.Init(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	key := []byte("key")
	for i := range 10 {
		val := frand.Bytes(32)
		if err := r.Put(key, val); err != nil {
			t.Fatal(err)
		}
		got, err := r.Get(key)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, val) {
			t.Fatalf("write %d: expected %x got %x", i, val, got)
		}
	}
}
