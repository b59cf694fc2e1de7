// Package postgres implements the store interfaces on PostgreSQL via
// database/sql and the pgx stdlib driver. It maps constraint
// violations to store sentinel errors and carries the embedded goose
// migrations that define the schema.
package postgres
