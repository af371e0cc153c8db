package auth

import "adboard/internal/domain" // Importing domain models

// MayMutate decides whether actor may modify a resource owned by ownerID.
// Admins may mutate anything; everyone else only their own resources.
// Authorization is all-or-nothing per request, there are no field-level
// permissions.
func MayMutate(actor *domain.User, ownerID uint) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.ID == ownerID
}
