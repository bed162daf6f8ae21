package metadata

type (
	by = []byte
	er = error
)
