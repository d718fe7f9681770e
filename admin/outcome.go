package admin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies the result of a single Execute call.
type Kind int

const (
	// KindUnexpectedError is the zero Kind so that an unset Outcome renders
	// the generic failure envelope.
	KindUnexpectedError Kind = iota
	KindSuccess
	KindConfigError
	KindTransportError
	KindStatusError
)

// String returns the kind's name for logs.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindConfigError:
		return "config_error"
	case KindTransportError:
		return "transport_error"
	case KindStatusError:
		return "status_error"
	case KindUnexpectedError:
		return "unexpected_error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Caller-facing messages for synthetic envelopes.
const (
	msgMissingAccessToken = "Server missing Shopify access token."
	msgMissingStoreName   = "Shopify store name not configured."
	msgTransport          = "HTTP Request Error connecting to Shopify"
	msgStatusFormat       = "HTTP Status Error: %d"
	msgUnexpected         = "An unexpected error occurred"
)

// Outcome is the classified result of one Execute call.
type Outcome struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind

	// StatusCode is the HTTP status for KindStatusError and KindSuccess.
	StatusCode int

	// Body is the raw upstream JSON for KindSuccess.
	Body json.RawMessage

	// Err wraps one of the package sentinels and the internal cause.
	// It is nil for KindSuccess and is never shown to callers.
	Err error
}

// OK reports whether the upstream returned a JSON body with a 2xx status.
// Upstream GraphQL errors inside that body do not affect OK.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// HasGraphQLErrors reports whether a successful body is an object with a
// top-level "errors" member, whatever its value.
func (o Outcome) HasGraphQLErrors() bool {
	if o.Kind != KindSuccess {
		return false
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(o.Body, &members); err != nil {
		return false
	}
	_, ok := members["errors"]
	return ok
}

// Message returns the caller-facing message of a failed outcome,
// or "" for KindSuccess.
func (o Outcome) Message() string {
	switch o.Kind {
	case KindSuccess:
		return ""
	case KindConfigError:
		if errors.Is(o.Err, ErrMissingAccessToken) {
			return msgMissingAccessToken
		}
		return msgMissingStoreName
	case KindTransportError:
		return msgTransport
	case KindStatusError:
		return fmt.Sprintf(msgStatusFormat, o.StatusCode)
	case KindUnexpectedError:
		return msgUnexpected
	}
	return msgUnexpected
}

// Envelope renders the outcome as the JSON string returned to callers.
func (o Outcome) Envelope() string {
	if o.Kind == KindSuccess {
		if len(o.Body) == 0 {
			return errorEnvelope(msgUnexpected)
		}
		return string(o.Body)
	}
	return errorEnvelope(o.Message())
}

type envelopeError struct {
	Message string `json:"message"`
}

type envelope struct {
	Errors []envelopeError `json:"errors"`
}

func errorEnvelope(message string) string {
	b, err := json.Marshal(envelope{Errors: []envelopeError{{Message: message}}})
	if err != nil {
		return `{"errors":[{"message":"` + msgUnexpected + `"}]}`
	}
	return string(b)
}
