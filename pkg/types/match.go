package types

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// Match is a single accepted occurrence of the pattern.
type Match struct {
	ID        string    `json:"id"` // SHA-1(content_id + '\0' + pattern + '\0' + start + '\0' + end)
	Path      string    `json:"path"`
	ContentID ContentID `json:"content_id"`
	Location  Location  `json:"location"`
	Snippet   Snippet   `json:"snippet"`
}

// ComputeID computes a stable identifier for the match from the searched
// content, the pattern and the code point span.
func (m *Match) ComputeID(pattern string) string {
	h := sha1.New()

	h.Write(m.ContentID[:])
	h.Write([]byte{0})

	h.Write([]byte(pattern))
	h.Write([]byte{0})

	h.Write([]byte(strconv.Itoa(m.Location.Offset.Start)))
	h.Write([]byte{0})

	h.Write([]byte(strconv.Itoa(m.Location.Offset.End)))

	return hex.EncodeToString(h.Sum(nil))
}
