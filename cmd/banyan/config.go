package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"go-simpler.org/env"

	"banyan.lol/chk"
)

// C is the configuration for the banyan command. It is absolutely minimal;
// the interesting state lives in the database.
type C struct {
	AppName    string `env:"APP_NAME" default:"banyan"`
	DataDir    string `env:"DATA_DIR" usage:"directory the badger store lives in, defaults below the XDG data home"`
	Namespace  string `env:"NAMESPACE" default:"banyan" usage:"namespace prefix scoping this trie inside the store"`
	LogLevel   string `env:"LOG_LEVEL" default:"info" usage:"off|fatal|error|warn|info|debug|trace"`
	DbLogLevel string `env:"DB_LOG_LEVEL" default:"error" usage:"log level of the badger store"`
	Pprof      bool   `env:"PPROF" default:"false" usage:"enable memory profiling"`
}

// NewConfig loads the configuration from the environment.
func NewConfig() (c *C, err error) {
	c = &C{}
	if err = env.Load(c, nil); chk.T(err) {
		return
	}
	if c.DataDir == "" {
		c.DataDir = filepath.Join(xdg.DataHome, c.AppName)
	}
	return
}

// PrintHelp describes the environment variables and the commands.
func PrintHelp(c *C, w io.Writer) {
	fmt.Fprintf(w, "\nenvironment variables that configure %s:\n\n", c.AppName)
	env.Usage(c, w, nil)
	fmt.Fprintf(w, `
commands:

  %[1]s insert <key> <value>   append a value to the values stored for a key
  %[1]s get <key>              print every value stored for a key, oldest first
  %[1]s help                   print this help message
  %[1]s version                print version info

`, c.AppName)
}
