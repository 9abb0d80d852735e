package api

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure once at the client boundary so callers
// switch on it instead of matching backend message strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnavailable
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Status  int
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("api: %s %s (%d): %s", e.Kind, e.Path, e.Status, e.Message)
}

// KindOf extracts the failure kind from err, or KindUnknown for errors that
// did not originate at the API client.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is an API not-found failure. It never matches
// transport errors, so "resource does not exist" stays distinct from
// "request failed".
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func kindFromStatus(status int) Kind {
	switch status {
	case 400, 422:
		return KindValidation
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 429:
		return KindRateLimited
	default:
		return KindUnknown
	}
}
