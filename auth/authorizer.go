package auth

import (
	"team-bot/domain"
	"team-bot/errors"

	"github.com/samber/lo"
)

// IsAuthorized reports whether invoker may split teams or change settings:
// administrators always may, anyone else needs the captain role, if one is
// configured.
func IsAuthorized(invoker domain.Invoker, captainRole *domain.RoleID) bool {
	if invoker.Administrator {
		return true
	}
	if captainRole == nil {
		return false
	}
	return lo.Contains(invoker.Roles, *captainRole)
}

func Authorize(invoker domain.Invoker, captainRole *domain.RoleID) error {
	if !IsAuthorized(invoker, captainRole) {
		return errors.ErrUnauthorized
	}
	return nil
}
