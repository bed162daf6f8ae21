package keyspace

type (
	by = []byte
	st = string
	er = error
)
