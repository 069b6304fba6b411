// Package service orchestrates the application's use cases on top of the
// store layer: place CRUD with ownership enforcement and transactional
// consistency, and user signup/login with password hashing and token
// issuance.
package service
