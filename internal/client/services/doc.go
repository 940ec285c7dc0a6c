// Package services contains the application services of the client: the
// faculty workspace (patents, Google Scholar profile) and the admin
// workspace (faculty directory, exports). Services validate input locally
// and delegate everything else to the backend API client.
package services
