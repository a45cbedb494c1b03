// Package tokens holds the session's access/refresh token pair.
//
// The Store reads and writes the two values through an injected Storage
// capability, so the same code runs against process memory (tests, one-shot
// sessions) and the local SQLite database (the CLI). Values are kept under
// fixed keys, "token" and "refreshToken".
//
// Tokens are opaque to the store: no well-formedness check is made and expiry
// is only discovered when the backend answers 401. Inspect decodes JWT claims
// for display purposes only.
package tokens
