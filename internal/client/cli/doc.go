// Package cli provides the nuroki command-line client.
//
// Each cobra subcommand (login, journal create, courses list, ...) builds an
// App from the configuration, runs one operation and exits. Running nuroki
// without a subcommand, or with "shell", starts an interactive REPL over the
// same App (see runREPL).
//
// The session survives between invocations: the token pair is persisted in
// a local SQLite database and refreshed transparently by the REST client.
package cli
