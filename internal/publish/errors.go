package publish

import "errors"

var (
	// ErrInvalidTransition indicates a flow step was attempted from the
	// wrong state.
	ErrInvalidTransition = errors.New("invalid publication flow transition")
	// ErrInvalidDomain indicates the requested domain name is empty after
	// normalization or uses an unsupported extension.
	ErrInvalidDomain = errors.New("invalid domain name")
	// ErrDomainUnavailable indicates the checked domain cannot be purchased.
	ErrDomainUnavailable = errors.New("domain is not available")
	// ErrAlreadyPublished indicates the resume already has a published site.
	ErrAlreadyPublished = errors.New("resume is already published")
	// ErrPublishInProgress indicates another publication of the same resume
	// is currently running.
	ErrPublishInProgress = errors.New("publication already in progress")
)
