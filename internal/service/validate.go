package service

import (
	"net/mail"

	"github.com/campusgate/campusgate-go/internal/model"
)

const (
	maxNameLength     = 255
	minPasswordLength = 6
)

func validateRegister(req model.RegisterRequest) *ValidationError {
	fields := map[string]string{}

	validateName(req.Name, fields)
	validateEmail(req.Email, fields)
	validatePassword(req.Password, fields)
	if _, taken := fields["password"]; !taken && req.Password != req.PasswordConfirmation {
		fields["password"] = "password confirmation does not match"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateLogin(req model.LoginRequest) *ValidationError {
	fields := map[string]string{}

	validateEmail(req.Email, fields)
	validatePassword(req.Password, fields)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateUpdate(req model.UpdateUserRequest) *ValidationError {
	fields := map[string]string{}

	validateName(req.Name, fields)
	validateEmail(req.Email, fields)
	validatePassword(req.Password, fields)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateName(name string, fields map[string]string) {
	switch {
	case name == "":
		fields["name"] = "name is required"
	case len(name) > maxNameLength:
		fields["name"] = "name must not exceed 255 characters"
	}
}

func validateEmail(email string, fields map[string]string) {
	switch {
	case email == "":
		fields["email"] = "email is required"
	case !isValidEmail(email):
		fields["email"] = "email must be a valid email address"
	}
}

func validatePassword(password string, fields map[string]string) {
	switch {
	case password == "":
		fields["password"] = "password is required"
	case len(password) < minPasswordLength:
		fields["password"] = "password must be at least 6 characters"
	}
}

// isValidEmail accepts plain addresses only, rejecting display-name forms
// like "Name <a@b.c>".
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
