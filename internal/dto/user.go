package dto

// SignupRequest is the JSON body for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SigninRequest is the JSON body for POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the bearer token issued on signup and signin.
type TokenResponse struct {
	Token string `json:"token"`
}
