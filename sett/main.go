// Package sett is a badger DB backed implementation of the store.I contract
// that the trie engine writes through to. A sett is where a badger lives.
package sett

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"banyan.lol/lol"
	"banyan.lol/store"
	"banyan.lol/units"
)

// T is a badger backed store. The trie engine only sees the store.I
// contract; the rest of the surface here is lifecycle.
type T struct {
	// DB is the badger db
	*badger.DB
	dataDir        st
	BlockCacheSize no
	InitLogLevel   no
	Logger         *logger
}

var _ store.I = (*T)(nil)

// BackendParams is the configuration used in creating a new sett.T.
type BackendParams struct {
	BlockCacheSize, LogLevel no
}

// New configures a new sett.T backing store. Call Init to open it.
func New(p BackendParams) *T {
	if p.BlockCacheSize == 0 {
		p.BlockCacheSize = 250 * units.Mb
	}
	return &T{
		BlockCacheSize: p.BlockCacheSize,
		InitLogLevel:   p.LogLevel,
	}
}

// Init opens the badger database at path, creating it if needed.
func (r *T) Init(path st) (err er) {
	r.dataDir = path
	log.I.Ln("opening badger store at", r.Path())
	opts := badger.DefaultOptions(r.dataDir)
	opts.BlockCacheSize = int64(r.BlockCacheSize)
	opts.BlockSize = units.Mb
	opts.CompactL0OnClose = true
	opts.Compression = options.None
	r.Logger = NewLogger(r.InitLogLevel, r.dataDir)
	opts.Logger = r.Logger
	if r.DB, err = badger.Open(opts); chk.E(err) {
		return err
	}
	return
}

// Path returns the directory the store lives in.
func (r *T) Path() st { return r.dataDir }

// SetLogLevel atomically adjusts the badger logger to the given log level.
func (r *T) SetLogLevel(level st) {
	log.I.F("setting db log level %s", level)
	r.Logger.SetLogLevel(lol.GetLogLevel(level))
}

// Close syncs outstanding writes to disk and closes the database.
func (r *T) Close() (err er) {
	chk.E(r.DB.Sync())
	log.I.F("closing badger store %s", r.Path())
	if err = r.DB.Close(); chk.E(err) {
		return
	}
	log.D.F("badger store closed")
	return
}
