// Package credentials abstracts how proof of authenticated identity is
// issued and checked, so handlers stay agnostic to the concrete scheme.
package credentials

// Strategy issues, verifies, and revokes opaque credentials.
//
// The shipped implementation is a signed stateless token (see JWTStrategy);
// a server-side session store could satisfy the same interface if
// revocability before expiry ever becomes a requirement.
type Strategy interface {
	// Issue creates a credential for the given username.
	Issue(username string) (string, error)

	// Verify checks a credential and returns the username it proves.
	Verify(credential string) (string, error)

	// Revoke invalidates a credential where the scheme supports it.
	Revoke(credential string) error
}
