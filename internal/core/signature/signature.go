// Package signature checks GitHub webhook HMAC signatures
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Header carries the signature on every delivery
const Header = "X-Hub-Signature-256"

const prefix = "sha256="

// Verifier checks X-Hub-Signature-256 against a shared secret
// with no secret configured every delivery is accepted
type Verifier struct {
	secret []byte
}

// New returns a Verifier for secret, an empty secret disables checking
func New(secret string) Verifier {
	if secret == "" {
		return Verifier{}
	}
	return Verifier{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured
func (v Verifier) Enabled() bool { return len(v.secret) > 0 }

// Verify reports whether header is the signature of body
// body must be the exact bytes received, before any parsing
func (v Verifier) Verify(body []byte, header string) bool {
	if !v.Enabled() {
		return true
	}
	if header == "" {
		return false
	}
	want := v.Sign(body)
	// hmac.Equal is constant time only for equal lengths, a length mismatch is a plain reject
	if len(header) != len(want) {
		return false
	}
	return hmac.Equal([]byte(header), []byte(want))
}

// Sign returns "sha256=" plus the lowercase hex HMAC-SHA256 of body
// with no secret it returns ""
func (v Verifier) Sign(body []byte) string {
	if !v.Enabled() {
		return ""
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return prefix + hex.EncodeToString(mac.Sum(nil))
}
