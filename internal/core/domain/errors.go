package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrAttackNotFound = errors.New("attack not found")
var ErrLookupFailed = errors.New("breach lookup failed")
