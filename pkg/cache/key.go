package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Key derives the cache key of one tree of an input. The key covers the raw
// input text, the tree index and every setting that changes the result.
func Key(input []byte, tree int, separator string, idFirst bool) string {
	h := sha256.New()
	h.Write(input)
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(tree)))
	h.Write([]byte{0})
	h.Write([]byte(separator))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(idFirst)))
	return "table-" + hex.EncodeToString(h.Sum(nil))
}
