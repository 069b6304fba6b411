// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes Fn fields for per-test behavior
// overrides and falls back to configurable default values.
package mocks
