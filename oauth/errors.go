package oauth

import "errors"

// Failure modes of the request-signing engine. All of these abort the
// in-progress operation; none are retried internally.
var (
	// Configuration errors (construction time)
	ErrNoConfiguration = errors.New("no matching configuration")

	// Unsupported operation errors (request selection time)
	ErrUnsupportedRequestType = errors.New("unsupported request type")

	// Validation errors (request selection time)
	ErrMissingParameter = errors.New("missing required parameter")

	// Serialization errors
	ErrNoRequestURL  = errors.New("no request URL configured")
	ErrNoAccessToken = errors.New("no access token obtained")
	ErrMalformedBody = errors.New("malformed provider response body")
)
