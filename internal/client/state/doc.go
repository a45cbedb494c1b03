// Package state holds the in-process view state of a client session: the
// signed-in user's profile, the onboarding draft, and caches of the last
// journal and course fetches.
//
// Everything hangs off an explicit App value handed to the services; there
// are no package-level stores. All types are safe for concurrent use and
// every mutation is visible to the next reader.
package state
