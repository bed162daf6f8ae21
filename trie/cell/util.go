package cell

type (
	bo = bool
	by = []byte
	no = int
)
