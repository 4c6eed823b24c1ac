package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newID returns an opaque unique identifier. IDs are plain strings
// end-to-end; nothing may rely on their shape.
func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
