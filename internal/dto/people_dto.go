package dto

// ContactRequest is the buyer/seller creation form.
type ContactRequest struct {
	FirstName   string `json:"firstName"   validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// LoginRequest is forwarded as-is to auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the backend answer to a successful login.
type LoginResult struct {
	Role string `json:"role"`
}

// LoginResponse is returned by the console after a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Role        string `json:"role"`
}
