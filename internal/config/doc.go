// Package config loads and validates application configuration from
// environment variables and optional config files. Settings are grouped
// into server, database, and auth sections; an empty database URL
// selects the in-memory storage backend.
package config
