// Package session owns the authenticated identity of the client.
//
// An Authority is created once per process, bootstrapped from durable
// storage, and shared by every consumer. It performs login, registration
// and logout, hands the current bearer credential to the API transport,
// and publishes identity changes to subscribers. Resolve is the pure route
// guard deciding which view an identity may reach.
package session
