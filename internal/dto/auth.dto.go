package dto

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

type User struct {
	ID        uint   `json:"id,omitempty"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role" validate:"oneof=staff manager"`
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}
