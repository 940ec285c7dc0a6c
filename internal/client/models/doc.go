// Package models defines the client-side data shapes exchanged with the
// Faculty IP backend: identities, scholar profiles and patent records.
//
// JSON tags mirror the backend wire format (snake_case).
package models
