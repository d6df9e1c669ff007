package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	return got
}

func TestHealthHandler(t *testing.T) {
	rr := serve(t, http.MethodGet, "/health", "/health", "", NewHealthHandler())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `"OK"`, rr.Body.String())
}

func TestListUsersHandler(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{
					{ID: 1, FirstName: "Ann", LastName: "Able", Email: "ann@example.com", PasswordHash: "secret1"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"users":[]}`,
		},
		{
			name: "store failure",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserLister(ctrl)
			tt.mockSetup(svc)

			rr := serve(t, http.MethodGet, "/users", "/users", "", NewListUsersHandler(svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestCreateUserHandler(t *testing.T) {
	valid := `{"firstName":" Ann ","lastName":"Able","email":"ann@example.com","password":"secret1"}`
	normalized := models.NewUser{FirstName: "Ann", LastName: "Able", Email: "ann@example.com", Password: "secret1"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), normalized).Return(&models.CreatedUser{
					ID: 1, FirstName: "Ann", LastName: "Able", Email: "ann@example.com",
				}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"firstName":"Ann","lastName":"Able","email":"ann@example.com"}`,
		},
		{
			name:         "invalid json",
			body:         `{"firstName":`,
			mockSetup:    func(m *MockUserCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid JSON"}`,
		},
		{
			name:         "json array",
			body:         `[]`,
			mockSetup:    func(m *MockUserCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid JSON"}`,
		},
		{
			name:         "short password",
			body:         `{"firstName":"Ann","lastName":"Able","email":"ann@example.com","password":"12345"}`,
			mockSetup:    func(m *MockUserCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"password must be at least 6 characters"}`,
		},
		{
			name:         "bad email",
			body:         `{"firstName":"Ann","lastName":"Able","email":"a@b","password":"secret1"}`,
			mockSetup:    func(m *MockUserCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"email is invalid"}`,
		},
		{
			name: "email taken",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), normalized).Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already in use"}`,
		},
		{
			name: "internal error",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), normalized).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserCreator(ctrl)
			tt.mockSetup(svc)

			rr := serve(t, http.MethodPost, "/users", "/users", tt.body, NewCreateUserHandler(svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	user := &models.UserDB{ID: 7, FirstName: "Ann", LastName: "Able", Email: "ann@example.com", PasswordHash: "secret1"}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "found",
			target: "/users/7",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(7)).Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "missing",
			target: "/users/9999",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(9999)).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name:         "non numeric id",
			target:       "/users/abc",
			mockSetup:    func(m *MockUserGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid user id",
		},
		{
			name:         "zero id",
			target:       "/users/0",
			mockSetup:    func(m *MockUserGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid user id",
		},
		{
			name:   "internal error",
			target: "/users/7",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(7)).Return(nil, errors.New("timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserGetter(ctrl)
			tt.mockSetup(svc)

			rr := serve(t, http.MethodGet, "/users/{id}", tt.target, "", NewGetUserHandler(svc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			got := decodeBody(t, rr)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, got["error"])
				return
			}
			assert.Equal(t, float64(7), got["id"])
			assert.Equal(t, "ann@example.com", got["email"])
			assert.NotContains(t, got, "passwordHash")
			assert.Contains(t, got, "createdAt")
		})
	}
}

func TestFallbackHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFoundHandler()(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowedHandler()(rr, httptest.NewRequest(http.MethodDelete, "/users", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
}
