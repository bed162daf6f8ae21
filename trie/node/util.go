package node

type (
	bo = bool
	by = []byte
	er = error
)
