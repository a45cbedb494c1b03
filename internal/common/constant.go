// Package common contains shared constants and sentinel errors used across
// nuroki client components.
package common

// Header names set on outbound REST requests.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)

// Storage keys under which the token pair is persisted. They match the keys
// the web frontend uses in browser storage.
const (
	AccessTokenKey  = "token"
	RefreshTokenKey = "refreshToken"
)

// JournalContentMaxLen is the maximum journal entry length, in runes.
const JournalContentMaxLen = 150
