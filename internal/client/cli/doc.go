// Package cli provides the interactive facultyip command-line client.
//
// It wires configuration, local storage, the session Authority, the API
// services and an interactive REPL. The REPL stands in for the dashboard
// UI: every command belongs to a view (landing, faculty or admin) and the
// route guard decides on each invocation whether it is reachable.
//
// Key features:
//   - login <faculty|admin> / register / logout
//   - faculty: overview, patents, addpatent, scholar
//   - admin: faculty, show <id>, export <id>
//   - open <path> to test navigation, whoami for the current session
//
// The command tree is built by NewRootCommand; the REPL is started via
// App.Run(ctx), which blocks until the user exits.
package cli
