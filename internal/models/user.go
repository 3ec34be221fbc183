package models

import "errors"

// ErrInvalidInput is returned when a user payload is missing a field, carries a
// non-string value, or an empty string.
var ErrInvalidInput = errors.New("invalid input")

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// UserInput is a create/update payload as read from the request body.
// Fields stay untyped so that wrongly-typed values can be rejected.
type UserInput struct {
	Name  any
	Email any
}

// UserFields holds validated name and email values.
type UserFields struct {
	Name  string
	Email string
}

// ValidateUserInput checks that name and email are both present, non-empty strings.
func ValidateUserInput(in UserInput) (UserFields, error) {
	name, ok := in.Name.(string)
	if !ok || name == "" {
		return UserFields{}, ErrInvalidInput
	}
	email, ok := in.Email.(string)
	if !ok || email == "" {
		return UserFields{}, ErrInvalidInput
	}
	return UserFields{Name: name, Email: email}, nil
}
