package models

import "time"

// UserRole enumerates the roles a user can hold. The role is a pass-through
// attribute for now; no route gates on it.
type UserRole string

// User role values
const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleReviewer UserRole = "reviewer"
)

// User holds the structure for the users collection in mongo
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Role      UserRole  `json:"role" bson:"role"`
	BadgeID   string    `json:"badge_id" bson:"badge_id"`
	Rating    float64   `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserRegister is the request body for registering a user
type UserRegister struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`
	BadgeID  string   `json:"badge_id"`
}

// UserLogin is the request body for logging in
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the register and login routes
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
