package user

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=64"`
	Email string `json:"email" validate:"omitempty,email"`
}
