// AngelaMos | 2026
// dto.go

package user

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,max=255"`
	Username string `json:"username" validate:"required,min=1,max=100"`
}

type IdentityResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func ToIdentityResponse(id *Identity) IdentityResponse {
	return IdentityResponse{
		Email:    id.Email,
		Username: id.Username,
		Role:     id.Role,
	}
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
