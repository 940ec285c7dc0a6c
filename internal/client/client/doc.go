// Package client is the HTTP client for the Faculty IP backend.
//
// # Overview
//
//  1. Client is the REST contract: auth, faculty patents and scholar
//     profile, admin faculty listing and export.
//  2. HTTPClient implements it over JSON/HTTP. Its http.Client carries a
//     transport chain (request id, logging, bearer credential), so no call
//     site ever sets the Authorization header by hand.
//  3. InitDatabase / RunMigrations bootstrap the local SQLite database that
//     holds the session.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are *APIError;
// errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrForbidden) match
// 401 and 403. Detail(err) returns the backend's reason text.
package client
