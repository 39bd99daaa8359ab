package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when a request-supplied id string is not a
// well-formed identifier.
var ErrInvalidID = errors.New("invalid id")

// ParseID converts an opaque request-supplied id string into the storage id
// type. Ids arrive as decimal strings; anything else is rejected here so it
// surfaces as a validation failure, never a driver error.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || n == 0 {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}

// FormatID renders an id in its canonical string form. Ownership checks and
// the investments.transactions back-reference list both use this form so
// comparisons round-trip regardless of how an id arrived.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
