// Package shared holds the HTTP plumbing used by every handler: JSON request
// decoding and validation, JSON and error responses, and the per-request
// trace identifier.
package shared
