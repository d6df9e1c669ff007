// Package validation normalizes and checks request fields before any store
// access. All functions are pure.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// ErrInvalidInput matches every *Error via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Error is a client input failure. Message is returned to the caller verbatim.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == ErrInvalidInput }

func fieldError(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return isEmailShape(fl.Field().String())
	})
	return v
}

// isEmailShape requires an '@' past the first character and, after it, a '.'
// with at least one character on each side. Only the first such '.' counts.
func isEmailShape(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	dot := strings.Index(email[at+1:], ".")
	return dot > 0 && at+1+dot < len(email)-1
}

// translate turns the first validator failure into a client message.
func translate(err error, field string) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if fe.Field() != "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return fieldError(field, "%s must not be empty", field)
	case "max":
		return fieldError(field, "%s must be at most %s characters", field, fe.Param())
	case "min":
		return fieldError(field, "%s must be at least %s characters", field, fe.Param())
	case "emailshape":
		return fieldError(field, "%s is invalid", field)
	case "oneof":
		return fieldError(field, "%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fieldError(field, "%s must not be negative", field)
	default:
		return fieldError(field, "%s is invalid", field)
	}
}

// stringField extracts a string value. present is false when the key is absent or null.
func stringField(fields map[string]any, name string) (value string, present bool, err error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fieldError(name, "%s must be a string", name)
	}
	return s, true, nil
}

// numberField extracts a numeric value. present is false when the key is absent or null.
func numberField(fields map[string]any, name string) (value float64, present bool, err error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, true, fieldError(name, "%s must be a number", name)
		}
		return f, true, nil
	default:
		return 0, true, fieldError(name, "%s must be a number", name)
	}
}

type newUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,max=255,emailshape"`
	Password  string `json:"password" validate:"required,min=6"`
}

// ValidateNewUser checks the fields of a user creation request.
// firstName, lastName and email are trimmed; password is taken as is.
func ValidateNewUser(fields map[string]any) (models.NewUser, error) {
	var values [4]string
	for i, name := range []string{"firstName", "lastName", "email", "password"} {
		v, present, err := stringField(fields, name)
		if err != nil {
			return models.NewUser{}, err
		}
		if !present {
			return models.NewUser{}, fieldError(name, "%s is required", name)
		}
		values[i] = v
	}

	in := newUserInput{
		FirstName: strings.TrimSpace(values[0]),
		LastName:  strings.TrimSpace(values[1]),
		Email:     strings.TrimSpace(values[2]),
		Password:  values[3],
	}
	if err := validate.Struct(in); err != nil {
		return models.NewUser{}, translate(err, "")
	}

	return models.NewUser{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	}, nil
}

type newAccountInput struct {
	Type    string  `json:"type" validate:"required,oneof=checking savings"`
	Status  string  `json:"status" validate:"required,oneof=active locked"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

// ValidateNewAccount checks an account creation request and applies the
// status and balance defaults.
func ValidateNewAccount(fields map[string]any) (models.NewAccount, error) {
	accountType, present, err := stringField(fields, "type")
	if err != nil {
		return models.NewAccount{}, err
	}
	if !present {
		return models.NewAccount{}, fieldError("type", "type is required")
	}

	status, present, err := stringField(fields, "status")
	if err != nil {
		return models.NewAccount{}, err
	}
	if !present {
		status = models.AccountStatusActive
	}

	balance, _, err := numberField(fields, "balance")
	if err != nil {
		return models.NewAccount{}, err
	}

	in := newAccountInput{
		Type:    strings.TrimSpace(accountType),
		Status:  strings.TrimSpace(status),
		Balance: balance,
	}
	if err := validate.Struct(in); err != nil {
		return models.NewAccount{}, translate(err, "")
	}

	return models.NewAccount{Type: in.Type, Status: in.Status, Balance: in.Balance}, nil
}

// patchRules holds the per-field rules of a partial account update, in the
// order changes are applied.
var patchRules = []struct {
	field models.AccountField
	tag   string
}{
	{models.AccountFieldType, "required,oneof=checking savings"},
	{models.AccountFieldStatus, "required,oneof=active locked"},
	{models.AccountFieldBalance, "gte=0"},
}

// ValidateAccountPatch checks a partial account update. Any field name other
// than type, status or balance is rejected; with several unknown names the
// alphabetically first one is reported.
func ValidateAccountPatch(fields map[string]any) (models.AccountPatch, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch models.AccountField(name) {
		case models.AccountFieldType, models.AccountFieldStatus, models.AccountFieldBalance:
		default:
			return nil, fieldError(name, "unknown field: %s", name)
		}
	}

	var patch models.AccountPatch
	for _, rule := range patchRules {
		name := string(rule.field)
		if _, ok := fields[name]; !ok {
			continue
		}

		var value any
		if rule.field == models.AccountFieldBalance {
			n, present, err := numberField(fields, name)
			if err != nil {
				return nil, err
			}
			if !present {
				return nil, fieldError(name, "%s must be a number", name)
			}
			value = n
		} else {
			s, present, err := stringField(fields, name)
			if err != nil {
				return nil, err
			}
			if !present {
				return nil, fieldError(name, "%s must not be empty", name)
			}
			value = strings.TrimSpace(s)
		}

		if err := validate.Var(value, rule.tag); err != nil {
			return nil, translate(err, name)
		}
		patch = append(patch, models.AccountChange{Field: rule.field, Value: value})
	}

	if len(patch) == 0 {
		return nil, fieldError("", "no valid fields to update")
	}
	return patch, nil
}
