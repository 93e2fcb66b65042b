// Package auth implements the authentication gateway for employee-api.
//
// # Pipeline
//
// Authentication is a two-stage pipeline:
//
//  1. Gateway (Middleware): runs once per request ahead of routing. It
//     extracts a bearer token, verifies it with the TokenCodec, resolves the
//     subject to a Principal via the account store, and annotates the request
//     context with an Outcome (anonymous, authenticated, or rejected). The
//     gateway never writes the response and never halts the chain.
//
//  2. Policy (Middleware): consults a static, ordered rule table. Whitelisted
//     paths bypass all checks; the account-management prefix requires the
//     admin role; everything else requires an authenticated principal. The
//     policy is the only stage that terminates a request, converting
//     rejections and misses into fixed 401/403 responses.
//
// # Tokens
//
// Tokens are HS512-signed JWTs carrying sub (account id), iat, nbf (=iat)
// and exp. Expiry is the only invalidation path; there is no revocation
// list. Tokens are bearer credentials and are never logged in full.
//
// # Roles
//
// Roles form a small closed set: admin and user, with an explicit implies
// relation (admin implies user). A principal's roles are derived fresh from
// the account's admin flag on every authenticated request.
package auth
