// Package store provides abstractions for data persistence: the store
// interfaces implemented by internal/platform/postgres, the sentinel
// errors shared by every implementation, and the transaction helper that
// services use to make multi-store writes atomic.
package store
