package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
	"github.com/sbilibin2017/gw-user-accounts/internal/validation"
)

//go:generate mockgen -source=accounts.go -destination=accounts_mock.go -package=handlers

// UserProber checks that a user exists.
type UserProber interface {
	UserExists(ctx context.Context, id int64) (bool, error)
}

// AccountProber checks that an account exists.
type AccountProber interface {
	AccountExists(ctx context.Context, id int64) (bool, error)
}

// AccountLister lists the accounts of a user.
type AccountLister interface {
	ListAccountsForUser(ctx context.Context, userID int64) ([]models.AccountDB, error)
}

// AccountCreator opens accounts for a user.
type AccountCreator interface {
	CreateAccount(ctx context.Context, userID int64, account models.NewAccount) (*models.AccountDB, error)
}

// AccountPatcher applies partial account updates.
type AccountPatcher interface {
	PatchAccount(ctx context.Context, id int64, patch models.AccountPatch) (*models.AccountDB, error)
}

// CreateAccountRequest represents the JSON body for account creation
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// checking or savings
	// required: true
	// default: checking
	Type string `json:"type"`

	// active or locked
	// default: active
	Status string `json:"status,omitempty"`

	// default: 0
	Balance float64 `json:"balance,omitempty"`
}

// PatchAccountRequest represents a partial account update; at least one field is required
// swagger:model PatchAccountRequest
type PatchAccountRequest struct {
	Type    *string  `json:"type,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
}

// NewListAccountsHandler returns an HTTP handler listing a user's accounts.
// @Summary List accounts of a user
// @Tags accounts
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.AccountsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id}/accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		accounts, err := svc.ListAccountsForUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AccountsResponse{Accounts: accounts})
	}
}

// NewCreateAccountHandler returns an HTTP handler opening an account for a user.
// The user is looked up before the body is read, so a missing user is a 404
// whatever the payload.
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param createAccountRequest body handlers.CreateAccountRequest true "Account creation request"
// @Success 201 {object} models.AccountDB
// @Failure 400 {object} models.ErrorResponse "Invalid JSON or field value"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id}/accounts [post]
func NewCreateAccountHandler(users UserProber, svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		exists, err := users.UserExists(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !exists {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		fields, err := decodeFields(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		input, err := validation.ValidateNewAccount(fields)
		if err != nil {
			writeValidationError(w, r, err)
			return
		}

		account, err := svc.CreateAccount(r.Context(), userID, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

// NewPatchAccountHandler returns an HTTP handler for partial account updates.
// @Summary Update an account
// @Description Updates any non-empty subset of type, status and balance. Unknown fields are rejected.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param patchAccountRequest body handlers.PatchAccountRequest true "Fields to update"
// @Success 200 {object} models.AccountDB
// @Failure 400 {object} models.ErrorResponse "Invalid JSON or field value"
// @Failure 404 {object} models.ErrorResponse "Account not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /accounts/{id} [patch]
func NewPatchAccountHandler(accounts AccountProber, svc AccountPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid account id")
			return
		}

		exists, err := accounts.AccountExists(r.Context(), id)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !exists {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}

		fields, err := decodeFields(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		patch, err := validation.ValidateAccountPatch(fields)
		if err != nil {
			writeValidationError(w, r, err)
			return
		}

		account, err := svc.PatchAccount(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}
