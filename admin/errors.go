package admin

import "errors"

// Sentinel errors for outcome classification.
// Outcome.Err wraps exactly one of these.
var (
	// ErrMissingAccessToken indicates that no access token is configured.
	ErrMissingAccessToken = errors.New("shopify access token not configured")

	// ErrMissingStoreName indicates that neither a store name nor an endpoint
	// override is configured.
	ErrMissingStoreName = errors.New("shopify store name not configured")

	// ErrTransport indicates that no HTTP response was obtained.
	ErrTransport = errors.New("shopify request failed")

	// ErrHTTPStatus indicates a non-2xx response status.
	ErrHTTPStatus = errors.New("shopify returned error status")

	// ErrUnexpected covers everything else: unreadable or malformed bodies,
	// oversized responses, and recovered panics.
	ErrUnexpected = errors.New("unexpected shopify request error")
)
