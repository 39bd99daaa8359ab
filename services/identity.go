package services

import "github.com/dgeemedia/chrenis/models"

// Identity is the authenticated caller as seen by the workflows. A zero
// Identity means no usable caller identity.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == 0
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanonicalID is the caller's id in canonical string form, used for
// ownership comparisons.
func (i Identity) CanonicalID() string {
	return models.FormatID(i.UserID)
}

// owns reports whether the caller owns a record whose owner id is ownerID.
// Both sides are compared in canonical string form so the check holds no
// matter how either id arrived.
func (i Identity) owns(ownerID uint) bool {
	if ownerID == 0 {
		return false
	}
	return models.FormatID(ownerID) == i.CanonicalID()
}
