package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// RowFingerprint identifies duplicate rows
type RowFingerprint Hash

// NewRowFingerprint hashes an ordered sequence of canonical cell strings.
// Cells must already encode the missing/empty distinction; the separator
// bytes keep adjacent cells from colliding.
func NewRowFingerprint(cells []string) RowFingerprint {
	return RowFingerprint(NewHash([]byte(strings.Join(cells, "\x1e"))))
}

func (f RowFingerprint) String() string { return Hash(f).String() }
