// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the demo login check.

# Demo Accounts

Three fixed accounts are accepted:

	admin / admin123
	user  / user123
	demo  / demo123

ValidateCredentials is a pure function: exact, case-sensitive match, no
trimming, no side effects. There is no hashing or rate limiting; this is a
demo gate, not an authentication system.

# Login Form

Login combines the form's required-field checks with the credential check:

	fieldErrs, err := auth.Login(username, password)
	if len(fieldErrs) > 0 {
		// "Username is required" / "Password is required"
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// show auth.InvalidCredentialsMessage
	}
*/
package auth
