// Package postgres contains the PostgreSQL implementations of the store
// interfaces defined in internal/store, using the pgx stdlib driver
// through database/sql.
package postgres
