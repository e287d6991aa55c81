// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid username or password")

// InvalidCredentialsMessage is shown for any failed login. It never says
// which half of the pair was wrong.
const InvalidCredentialsMessage = "Invalid username or password"

type credential struct {
	username string
	password string
}

// demoUsers is the fixed allow-list of demo accounts
var demoUsers = []credential{
	{username: "admin", password: "admin123"},
	{username: "user", password: "user123"},
	{username: "demo", password: "demo123"},
}

// ValidateCredentials reports whether username and password exactly match
// one of the demo accounts. Comparison is case-sensitive with no trimming.
func ValidateCredentials(username, password string) bool {
	for _, u := range demoUsers {
		if u.username == username && u.password == password {
			return true
		}
	}
	return false
}

// CheckLoginFields returns the required-field errors of the login form,
// keyed by field name. An empty map means both fields were filled in.
func CheckLoginFields(username, password string) map[string]string {
	errs := make(map[string]string)
	if username == "" {
		errs["username"] = "Username is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// Login runs the login form checks and the credential check.
// Field errors are returned as-is; a mismatched pair yields ErrInvalidCredentials.
func Login(username, password string) (map[string]string, error) {
	if errs := CheckLoginFields(username, password); len(errs) > 0 {
		return errs, nil
	}
	if !ValidateCredentials(username, password) {
		return nil, ErrInvalidCredentials
	}
	return nil, nil
}
