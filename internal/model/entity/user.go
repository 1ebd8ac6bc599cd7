package entity

// User represents a registered user from the 'users' table
type User struct {
	ID           uint   `json:"user_id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:255"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the request body for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the signed session token back to the client
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
