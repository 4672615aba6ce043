// Package cli is the interactive front end of the portfolio session layer.
//
// It wires configuration, the chosen key-value backend, the session
// controller and the contact service into a REPL. The prompt shows who is
// signed in; commands map one-to-one onto controller operations:
//
//   - register / login / logout
//   - whoami
//   - contact
//
// The REPL is started via App.Run(ctx), which restores the persisted session
// and blocks until the user exits.
package cli
