// Package stores holds the GORM-backed persistence layer. Every store is
// constructed with an explicit *gorm.DB owned by the composition root; none
// of them reach for ambient globals.
package stores

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every store when the requested record does not
// exist. Callers never see gorm.ErrRecordNotFound directly.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
