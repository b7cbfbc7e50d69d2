package service

import "errors"

// Trust boundary errors. Handlers map these to status codes.
var (
	ErrInvalidResetToken   = errors.New("reset token is invalid")
	ErrResetTokenUsed      = errors.New("reset token already used")
	ErrResetTokenExpired   = errors.New("reset token expired")
	ErrAllocationExhausted = errors.New("join code allocation exhausted")
	ErrInvalidConfidence   = errors.New("confidence must be within [0, 1]")
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username must be 3-32 characters of a-z, 0-9, '.', '_' or '-'")
	ErrInvalidDisplayName = errors.New("display name must be at most 64 characters")
	ErrWeakPassword       = errors.New("password must be 8-128 characters")
	ErrInvalidRole        = errors.New("role is not allowed here")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidClassName = errors.New("class name must be 1-100 characters")
	ErrClassNotFound    = errors.New("class not found")
	ErrInvalidJoinCode  = errors.New("join code must be 6 characters of A-Z or 0-9")
	ErrUnknownJoinCode  = errors.New("no class with that join code")
	ErrAlreadyEnrolled  = errors.New("already enrolled in class")
	ErrNotClassMember   = errors.New("not a member of this class")
	ErrNotClassTeacher  = errors.New("only the class teacher may do that")

	ErrInvalidQuestion  = errors.New("question must be 1-500 characters")
	ErrInvalidChoice    = errors.New("choice must be 1-100 characters")
	ErrGameNotFound     = errors.New("game not found")
	ErrGameResolved     = errors.New("game already resolved")
	ErrNotEnrolled      = errors.New("student is not enrolled in the game's class")
	ErrAlreadyPredicted = errors.New("prediction already submitted for this game")
	ErrUnknownPolicy    = errors.New("unknown scoring policy")

	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapDisabled     = errors.New("bootstrap is disabled")
)
