// ABOUTME: Package documentation for the HTTP API layer
// ABOUTME: Describes routing, the middleware chain, and response conventions

// Package api serves the employee API over HTTP.
//
// Routing is a plain net/http mux under the /api/v1 prefix. Every request
// passes through a fixed middleware chain: the request logger installs the
// commitment-tracking response writer and a request id, the gateway decodes
// any bearer token into a request-scoped outcome, and the policy enforces
// whitelist and role rules, writing 401/403 when access is denied. Handlers
// run only for requests the policy admitted.
//
// Responses are JSON; errors use the {"error": "..."} shape. Internal
// failures are logged with detail but reported to clients with a generic
// message.
package api
