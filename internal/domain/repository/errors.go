package repository

import "lifeline/internal/errors"

// Sentinel errors returned by repository implementations. Use cases map
// these onto application errors; infrastructure never decides HTTP codes.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrCircleNotFound       = errors.New("circle not found")
	ErrDuplicateCircleCode  = errors.New("circle code already exists")
	ErrMemberNotFound       = errors.New("circle member not found")
	ErrDuplicateMember      = errors.New("user is already a circle member")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrRecipientNotFound    = errors.New("alert recipient not found")
	ErrDeviceNotFound       = errors.New("device not found")
	ErrCardNotFound         = errors.New("emergency card not found")
)
