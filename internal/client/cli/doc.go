// Package cli provides the interactive board client.
//
// Each REPL command plays the role of a screen: it first navigates to the
// screen's route, then asks the route guard whether it may render. Protected
// screens are skipped (and the location moves to /login) while no session
// exists. A pending session renders; its identity fills in as soon as the
// session manager resolves it.
//
// Commands:
//   - signup, login, logout, whoami
//   - boards, board <id>, newboard, editboard <id>, delboard <id>
//   - post <id>, newpost, editpost <id>, delpost <id>
//   - help, exit | quit
//
// The prompt shows the current location and, with a session, the username
// (or "…" while the identity is pending). A background watcher announces
// session changes that happen outside a command, such as a rejected
// credential.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
