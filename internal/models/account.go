package models

import "time"

// Supported account types
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Supported account statuses
const (
	AccountStatusActive = "active"
	AccountStatusLocked = "locked"
)

// AccountDB represents an account row in the database
type AccountDB struct {
	ID        int64     `json:"id" db:"id"`                 // Store-assigned identity
	UserID    int64     `json:"userId" db:"user_id"`        // Owner, references users.id
	Type      string    `json:"type" db:"type"`             // checking or savings
	Status    string    `json:"status" db:"status"`         // active or locked
	Balance   float64   `json:"balance" db:"balance"`       // Never negative
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Refreshed on every mutation
}

// NewAccount holds normalized account fields with defaults applied.
type NewAccount struct {
	Type    string
	Status  string
	Balance float64
}

// AccountField names a column that a partial update may touch.
type AccountField string

const (
	AccountFieldType    AccountField = "type"
	AccountFieldStatus  AccountField = "status"
	AccountFieldBalance AccountField = "balance"
)

// AccountChange is a single (field, value) pair of a partial update.
type AccountChange struct {
	Field AccountField
	Value any
}

// AccountPatch is the ordered list of changes to apply to one account.
type AccountPatch []AccountChange
