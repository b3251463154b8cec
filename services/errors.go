package services

import "errors"

// All lifecycle failures are validation failures: local, recoverable, and
// meant to be shown to the acting user. The adapter matches them with
// errors.Is and picks the wording.
var (
	ErrSelfChallenge    = errors.New("you cannot challenge yourself")
	ErrInvalidOpponent  = errors.New("opponent cannot take part in debates")
	ErrConcurrencyLimit = errors.New("active debate limit reached")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrInvalidState     = errors.New("debate is not active")
	ErrInvalidWinner    = errors.New("winner must be a debate participant")
)
