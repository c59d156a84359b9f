package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	// pkceVerifierBytes is the number of random bytes for the PKCE code verifier.
	// 32 bytes provides 256 bits of entropy, which is recommended for security.
	pkceVerifierBytes = 32

	// stateBytes is the number of random bytes for the OAuth state parameter.
	// 32 bytes encodes to 43 base64url characters; the state only needs to be
	// unguessable, it is never derived from the verifier.
	stateBytes = 32
)

// PKCEChallenge represents a PKCE (Proof Key for Code Exchange) challenge.
// PKCE binds the authorization code to a locally generated secret so a stolen
// code alone cannot be redeemed.
type PKCEChallenge struct {
	// CodeVerifier is the cryptographically random string. It is kept secret
	// and transmitted only in the final token exchange.
	CodeVerifier string

	// CodeChallenge is the SHA256 hash of the verifier (base64url-encoded,
	// unpadded). This is sent in the authorization request.
	CodeChallenge string

	// CodeChallengeMethod is always "S256".
	CodeChallengeMethod string
}

// GeneratePKCE generates a new PKCE code verifier and challenge.
// The code verifier is 32 random bytes (256 bits), base64url-encoded.
// The code challenge is the S256 (SHA256) hash of the verifier.
//
// Returns a PKCEChallenge ready for use in an authorization request.
func GeneratePKCE() (*PKCEChallenge, error) {
	verifier, challenge, err := GeneratePKCERaw()
	if err != nil {
		return nil, err
	}

	return &PKCEChallenge{
		CodeVerifier:        verifier,
		CodeChallenge:       challenge,
		CodeChallengeMethod: "S256",
	}, nil
}

// GeneratePKCERaw generates a PKCE code verifier and challenge as raw strings.
// This is useful when you don't need the full PKCEChallenge struct.
//
// Returns the verifier and S256 challenge.
func GeneratePKCERaw() (verifier, challenge string, err error) {
	// Generate 32 random bytes for the code verifier
	verifierBytes := make([]byte, pkceVerifierBytes)
	if _, err := rand.Read(verifierBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes for PKCE: %w", err)
	}

	// Base64url-encode the verifier (no padding, URL-safe)
	verifier = base64.RawURLEncoding.EncodeToString(verifierBytes)

	// Generate the S256 challenge: SHA256(verifier), base64url-encoded
	hash := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(hash[:])

	return verifier, challenge, nil
}

// GenerateState generates a random state parameter for the authorization
// request. The state links the final redirect back to this attempt and is the
// CSRF defense for the whole flow.
//
// Returns a base64url-encoded random string.
func GenerateState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
