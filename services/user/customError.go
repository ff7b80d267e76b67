package user

import "errors"

// ErrUserNotFound signals that no user record exists for the given email.
// A valid credential for an unprovisioned email still resolves to this.
var ErrUserNotFound = errors.New("user not found")
