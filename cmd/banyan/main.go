// Package main is a small command line front end for the banyan trie
// index: it opens (or creates) a badger backed store and runs one insert
// or get against a namespace.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	banyan "banyan.lol"
	"banyan.lol/chk"
	"banyan.lol/log"
	"banyan.lol/lol"
	"banyan.lol/sett"
	"banyan.lol/trie"
	"banyan.lol/trie/cell"
)

func main() {
	var err error
	var cfg *C
	if cfg, err = NewConfig(); chk.T(err) {
		PrintHelp(cfg, os.Stderr)
		os.Exit(1)
	}
	args := os.Args[1:]
	if len(args) == 0 || args[0] == "help" {
		PrintHelp(cfg, os.Stderr)
		os.Exit(0)
	}
	if args[0] == "version" {
		fmt.Println(banyan.Version)
		os.Exit(0)
	}
	lol.SetLogLevel(cfg.LogLevel)
	if cfg.Pprof {
		defer profile.Start(profile.MemProfile).Stop()
	}
	store := sett.New(sett.BackendParams{
		LogLevel: lol.GetLogLevel(cfg.DbLogLevel),
	})
	if err = store.Init(cfg.DataDir); chk.F(err) {
		os.Exit(1)
	}
	defer func() { chk.E(store.Close()) }()
	var t *trie.T
	if t, err = trie.New(store, cfg.Namespace); chk.F(err) {
		os.Exit(1)
	}
	switch args[0] {
	case "insert":
		if len(args) != 3 {
			PrintHelp(cfg, os.Stderr)
			os.Exit(1)
		}
		if err = t.Insert([]byte(args[1]), []byte(args[2])); chk.F(err) {
			os.Exit(1)
		}
		if err = t.Flush(); chk.F(err) {
			os.Exit(1)
		}
		log.D.F("inserted %d bytes under %q", len(args[2]), args[1])
	case "get":
		if len(args) != 2 {
			PrintHelp(cfg, os.Stderr)
			os.Exit(1)
		}
		var c *cell.T
		if c, err = t.Get([]byte(args[1])); chk.F(err) {
			os.Exit(1)
		}
		for _, v := range c.Values() {
			fmt.Printf("%s\n", v)
		}
	default:
		PrintHelp(cfg, os.Stderr)
		os.Exit(1)
	}
}
