package usecase

import "github.com/google/uuid"

// CanMutate reports whether userID may edit or delete a resource owned by ownerID.
func CanMutate(userID, ownerID uuid.UUID) bool {
	return userID != uuid.Nil && userID == ownerID
}
