package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a random UUID, base58 encoded to keep entity IDs compact in
// URLs and log lines.
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
