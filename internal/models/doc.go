// Package models defines the domain entities of the onboarding wizard.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): read-only records loaded once at startup
//   - [Choice] : a single selectable topic or newsletter
//   - [Dataset] : the titled list of choices shown on one selection step
//
// 2. Persistent Entities: database-backed records
//   - [Submission] : the ids a user had chosen when they reached the summary
//
// Persistent entities implement the [Model] interface and are stored through a [Repository].
package models
