// AngelaMos | 2026
// entity.go

package user

type Role string

const (
	RoleConsumer Role = "consumer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleConsumer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Identity is the active session stored under the "user" key.
type Identity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// User is a registry entry stored under the "users" key.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) IsConsumer() bool {
	return u.Role == RoleConsumer
}
