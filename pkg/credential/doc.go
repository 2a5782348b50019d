// Package credential defines the contract for verifying bearer
// credentials and ships an HMAC-SHA256 token service implementing it.
//
// The authorization engine never inspects tokens itself; it depends on
// the Verifier interface, which turns an opaque bearer string into an
// Identity (a stable principal id plus claims) or ErrInvalidCredential.
// Production wires the identity provider's verifier; tests wire a fake.
//
// The bundled Service issues and verifies self-contained HS256 tokens in
// the classic header.claims.signature layout, kept dependency-free on
// purpose: stdlib crypto covers a single fixed algorithm, and a fixed
// algorithm cannot be confused into a weaker one.
package credential
