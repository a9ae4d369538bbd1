package badger

import "fmt"

// Key prefixes for different data types
const (
	docTextPrefix = "doctxt"
)

// makeDocTextKey generates a key for a cached extraction by content ID.
func makeDocTextKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d", docTextPrefix, id))
}
