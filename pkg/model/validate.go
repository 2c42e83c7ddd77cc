package model

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// Validation errors double as the messages shown to the user, so they are
// written in Spanish like the rest of the client's strings.
var (
	ErrEmailInvalid     = errors.New("Por favor ingresa un email válido")
	ErrPasswordEmpty    = errors.New("Por favor ingresa tu contraseña")
	ErrPasswordTooShort = errors.New("La contraseña debe tener al menos 6 caracteres")
	ErrUsernameTooShort = errors.New("El nombre de usuario debe tener al menos 3 caracteres")
)

// emailPattern accepts local@domain.tld shapes without whitespace or extra @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks that an address matches the simple local@domain.tld
// shape. Anything the backend would accept passes; full RFC 5322 parsing is
// deliberately out of scope.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateLogin checks login credentials before any request is issued.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordEmpty
	}
	return nil
}

// ValidateRegistration checks registration fields before any request is
// issued. Username and password length limits mirror the backend's and are
// counted in characters, not bytes, so accented input measures the same
// here as it does server-side.
func ValidateRegistration(username, email, password string) error {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
