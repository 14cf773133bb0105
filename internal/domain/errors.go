// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors. ErrForbidden is returned uniformly on denial so
	// callers cannot distinguish "exists but not yours" from "does not exist".
	ErrForbidden = errors.New("forbidden")

	// Infrastructure errors: the backing store is unreachable or timed out.
	// Retryable, never to be conflated with an empty result set.
	ErrUnavailable = errors.New("store unavailable")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugTaken            = errors.New("slug already in use")
	ErrInvalidSlug          = errors.New("slug must contain only lowercase letters, digits, and hyphens")
	ErrInvalidPolicy        = errors.New("invalid visibility policy")

	// User-related errors
	ErrUserNotFound = errors.New("user not found")

	// Quest-related errors
	ErrQuestNotFound = errors.New("quest not found")

	// Curation-related errors
	ErrInvalidGrantTarget = errors.New("only global quests can be curated")
)
