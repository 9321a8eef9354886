package models

// User represents a row of the users table.
// Username is unique; PasswordHash is a bcrypt hash and never leaves the backend.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	Role         string `json:"role" db:"role"`
	AuditFields
}
