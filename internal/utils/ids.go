package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const bookingRefPrefix = "BK"

// NewBookingRef returns a booking reference like "BK3F2A91CD": the fixed
// prefix plus 8 uppercase hex characters drawn from a random UUID.
// Uniqueness is enforced by the store; callers retry on collision.
func NewBookingRef() string {
	id := uuid.New()
	return bookingRefPrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
