package dto

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the identity returned on a successful login. The password hash
// never leaves the storage layer.
type UserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
