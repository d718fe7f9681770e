// Package admin forwards GraphQL documents to the Shopify Admin API.
//
// The package is a byte-level passthrough: it never parses or validates the
// query it is given. A [Client] performs exactly one authenticated POST per
// call and classifies what happened into an [Outcome]:
//
//   - KindConfigError: the access token or store is missing; no I/O happened
//   - KindTransportError: no HTTP response was obtained (dial, DNS, TLS, timeout)
//   - KindStatusError: the response status was not 2xx
//   - KindUnexpectedError: the body was not valid JSON, or anything else failed
//   - KindSuccess: the body is returned verbatim, upstream errors included
//
// # Envelopes
//
// Every outcome renders to a single JSON string with [Outcome.Envelope].
// Successful outcomes return the upstream body untouched. Failures render a
// synthetic envelope holding one error entry:
//
//	{"errors":[{"message":"HTTP Status Error: 429"}]}
//
// Low-level causes are reported to the configured [Logger] only and never
// appear in an envelope.
//
// # Usage
//
//	client := admin.New(admin.Config{
//	    AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
//	    StoreName:   "acme",
//	})
//	out := client.Execute(ctx, `{ shop { name } }`, nil)
//	fmt.Println(out.Envelope())
//
// # Concurrency
//
// A Client holds no mutable state after [New] and is safe for concurrent use.
// Each call owns its request and closes its response body on every path.
package admin
