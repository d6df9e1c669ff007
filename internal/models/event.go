package models

// AccountEvent is published after an account is created or changed.
type AccountEvent struct {
	EventID   string    `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64     `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the mutation.
	Operation string    `json:"operation"` // Operation is "account.created" or "account.updated".
	Account   AccountDB `json:"account"`   // Account is the record state after the mutation.
}

// Account event operations
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
)
