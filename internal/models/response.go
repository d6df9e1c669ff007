package models

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: email is invalid
	Error string `json:"error"`
}

// UsersResponse wraps the user listing
// swagger:model UsersResponse
type UsersResponse struct {
	Users []UserDB `json:"users"`
}

// AccountsResponse wraps the account listing of one user
// swagger:model AccountsResponse
type AccountsResponse struct {
	Accounts []AccountDB `json:"accounts"`
}
