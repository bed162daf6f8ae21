package banyan

type (
	by = []byte
	er = error
)
