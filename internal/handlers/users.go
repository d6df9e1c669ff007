package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
	"github.com/sbilibin2017/gw-user-accounts/internal/validation"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister lists every user.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserCreator creates users.
type UserCreator interface {
	CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error)
}

// UserGetter fetches a single user.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// default: Ann
	FirstName string `json:"firstName"`

	// required: true
	// default: Able
	LastName string `json:"lastName"`

	// required: true
	// default: ann@example.com
	Email string `json:"email"`

	// At least 6 characters
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all users ordered by last name, then first name.
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.UsersResponse{Users: users})
	}
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Validates the payload and stores a new user. Email addresses must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} models.CreatedUser
// @Failure 400 {object} models.ErrorResponse "Invalid JSON or field value"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		input, err := validation.ValidateNewUser(fields)
		if err != nil {
			writeValidationError(w, r, err)
			return
		}

		user, err := svc.CreateUser(r.Context(), input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email already in use")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
