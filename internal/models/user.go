package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Store-assigned identity
	FirstName    string    `json:"firstName" db:"first_name"`  // Given name
	LastName     string    `json:"lastName" db:"last_name"`    // Family name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// NewUser holds normalized user fields accepted by validation.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreatedUser is the echo returned after a user is inserted.
// swagger:model CreatedUser
type CreatedUser struct {
	// example: 1
	ID int64 `json:"id"`
	// example: Ann
	FirstName string `json:"firstName"`
	// example: Able
	LastName string `json:"lastName"`
	// example: ann@example.com
	Email string `json:"email"`
}
