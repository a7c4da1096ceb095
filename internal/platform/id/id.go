package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates the request ids sent with every backend call.
type Generator interface {
	New() string
}

// RandomHex returns 8 random bytes hex-encoded.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
