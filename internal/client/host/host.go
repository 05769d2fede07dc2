// Package host detects an embedding host runtime: a platform (such as a
// chat-app mini-app shell) that launches the client and supplies a trusted
// user identity, so the user never types credentials.
//
// Detection runs once at startup; absence simply means the manual sign-in
// path is used.
package host

import "os"

// Environment variables a host runtime sets when it embeds the client.
const (
	// userIDEnv carries the host-provided user identifier.
	userIDEnv = "WISHLIST_HOST_USER_ID"
	// secretEnv optionally carries a host-issued secret to authenticate
	// that identity. When absent, a secret derived from the identifier is
	// used; the host platform fronting the API is expected to vouch for
	// the identity either way.
	secretEnv = "WISHLIST_HOST_SECRET"
)

// Runtime describes a detected host environment.
type Runtime struct {
	UserID string
	secret string
}

// lookupEnv is a test seam.
var lookupEnv = os.LookupEnv

// Detect inspects the environment once and reports the embedding runtime,
// or nil when the client is running standalone.
func Detect() *Runtime {
	userID, ok := lookupEnv(userIDEnv)
	if !ok || userID == "" {
		return nil
	}
	secret, _ := lookupEnv(secretEnv)
	return &Runtime{UserID: userID, secret: secret}
}

// Login is the account login the host identity maps to.
func (r *Runtime) Login() string {
	return "host-" + r.UserID
}

// Secret is the password equivalent for the host identity.
func (r *Runtime) Secret() string {
	if r.secret != "" {
		return r.secret
	}
	return r.UserID
}
