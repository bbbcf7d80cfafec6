package dto

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the mutable profile fields. Password and id are
// deliberately absent; they cannot change through the update path.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
