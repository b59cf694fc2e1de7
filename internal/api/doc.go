// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts external clients to the service
// facade: handlers decode and validate DTOs, call the facade, and map the
// error taxonomy onto HTTP status codes.
package api
