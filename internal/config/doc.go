// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Configuration is loaded once at startup into an immutable Config value that is
// passed explicitly to the components that need it.
package config
