package auth

import "context"

type ctxKey string

const ContextUserKey ctxKey = "user"

// User is the authenticated identity attached to the request context by the
// auth middleware and consumed downstream for attribution stamping and the
// self-delete guard.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	return RoleAllowed(u.Role, roles)
}

// RoleAllowed is the authorization primitive: a route declares an allow-list
// and the identity's role must be a member. Pure function, no framework ties.
func RoleAllowed(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// WriterRoles may create and update space records.
func WriterRoles() []Role {
	return []Role{RoleAdmin, RoleManager}
}

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
