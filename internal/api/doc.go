// Package api contains the HTTP handlers for the places backend: user
// signup/login and listing, place CRUD with ownership enforcement, and the
// error-to-status mapping shared by all of them.
package api
