package common

// Secure storage keys holding the local session on the client.
const (
	TokenKey  = "token"
	UserIDKey = "user_id"
)

// AuthorizationHeaderName carries the bearer token on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
