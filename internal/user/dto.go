package user

import (
	"github.com/frahmantamala/facility-management/internal"
	"github.com/frahmantamala/facility-management/internal/auth"
)

// UpdateUserDTO carries a partial account update. Nil fields are untouched.
type UpdateUserDTO struct {
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (d UpdateUserDTO) Validate() error {
	if d.Username == nil && d.Role == nil {
		return internal.NewValidationError("nothing to update", internal.ErrCodeValidationFailed)
	}
	if d.Username != nil && *d.Username == "" {
		return internal.NewValidationError("username cannot be empty", internal.ErrCodeMissingField)
	}
	if d.Role != nil && !auth.ValidRole(auth.Role(*d.Role)) {
		return internal.NewValidationError("unknown role: "+*d.Role, internal.ErrCodeInvalidRole)
	}
	return nil
}
