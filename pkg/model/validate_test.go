package model

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid simple", "a@b.com", nil},
		{"valid subdomain", "user@mail.example.org", nil},
		{"valid plus tag", "user+tag@example.com", nil},
		{"empty", "", ErrEmailInvalid},
		{"no at sign", "userexample.com", ErrEmailInvalid},
		{"no domain dot", "user@example", ErrEmailInvalid},
		{"no local part", "@example.com", ErrEmailInvalid},
		{"no tld", "user@.", ErrEmailInvalid},
		{"contains space", "us er@example.com", ErrEmailInvalid},
		{"double at", "user@@example.com", ErrEmailInvalid},
		{"trailing space", "user@example.com ", ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateEmail(tt.input); err != tt.wantErr {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "a@b.com", "secret", nil},
		{"bad email", "not-an-email", "secret", ErrEmailInvalid},
		{"empty password", "a@b.com", "", ErrPasswordEmpty},
		{"short password still accepted", "a@b.com", "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateLogin(tt.email, tt.password); err != tt.wantErr {
				t.Errorf("ValidateLogin(%q, %q) = %v, want %v", tt.email, tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "alice", "alice@example.com", "secreto", nil},
		{"username exactly min", strings.Repeat("a", MinUsernameLength), "a@b.com", "secreto", nil},
		{"username too short", "ab", "a@b.com", "secreto", ErrUsernameTooShort},
		{"empty username", "", "a@b.com", "secreto", ErrUsernameTooShort},
		{"bad email", "alice", "alice", "secreto", ErrEmailInvalid},
		{"password exactly min", "alice", "a@b.com", strings.Repeat("x", MinPasswordLength), nil},
		{"password too short", "alice", "a@b.com", "corta", ErrPasswordTooShort},
		{"empty password", "alice", "a@b.com", "", ErrPasswordTooShort},
		{"accented username counted in characters", "ñá", "a@b.com", "secreto", ErrUsernameTooShort},
		{"accented username exactly min", "ñán", "a@b.com", "secreto", nil},
		{"accented password counted in characters", "alice", "a@b.com", "señal", ErrPasswordTooShort},
		{"accented password exactly min", "alice", "a@b.com", "señale", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.username, tt.email, tt.password)
			if err != tt.wantErr {
				t.Errorf("ValidateRegistration(%q, %q, %q) = %v, want %v",
					tt.username, tt.email, tt.password, err, tt.wantErr)
			}
		})
	}
}
