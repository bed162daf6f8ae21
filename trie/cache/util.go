package cache

import (
	"banyan.lol/lol"
)

type (
	bo = bool
	by = []byte
	er = error
	no = int
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
