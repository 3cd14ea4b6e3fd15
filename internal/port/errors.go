package port

import "errors"

// Sentinel errors used across ports. Handlers map these to HTTP statuses.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidInput       = errors.New("invalid input")

	ErrResumeNotFound   = errors.New("resume not found")
	ErrPersonalRequired = errors.New("the 'personal' object with a valid 'name' and 'email' is required")
	ErrResumeExists     = errors.New("resume already exists")
	ErrForbidden        = errors.New("forbidden")

	ErrEmbedderUnavailable   = errors.New("embedding model is not available")
	ErrSummarizerUnavailable = errors.New("summarization service is not configured")
)
