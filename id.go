package filingest

import "github.com/google/uuid"

// NewID returns a UUIDv7 string (RFC 9562). Document and chunk IDs are
// time-sortable, so chunk records keep their creation order when handed to
// a downstream store.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
