package auth

import "gamereviews/internal/models"

// CanModify allows the entity's recorded owner, or an admin, to modify it.
// Callers must have already confirmed the entity exists.
func CanModify(caller models.Identity, owner string) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.Username != "" && caller.Username == owner {
		return nil
	}
	return models.NewForbiddenError()
}
