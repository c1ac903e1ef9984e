// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Secrets (the fleet API key, the events API user id and the Redis address)
// can be overridden from the environment so they never need to live in the
// file.
package config
