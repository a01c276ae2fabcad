package domain

import "errors"

// Token verification failures. Callers outside the core collapse all three
// into a single "invalid token" response; the distinction exists for
// logging and metrics only.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")
var ErrBadSignature = errors.New("token signature invalid")
