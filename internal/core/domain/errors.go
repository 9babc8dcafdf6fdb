package domain

import "errors"

var ErrMissingFields = errors.New("missing required fields")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrRoleNotFound = errors.New("role not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNoToken = errors.New("no token provided")
var ErrTokenInvalid = errors.New("token invalid or expired")
