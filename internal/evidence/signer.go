package evidence

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

// Signer issues and checks expiring signatures over storage paths, so the
// HTTP API can hand out download links without exposing the filesystem.
type Signer struct {
	secret []byte
}

// NewSigner requires a non-empty secret; an empty secret would make every
// signature forgeable.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, eris.New("evidence: signing secret is required")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign returns the expiry unix seconds and the signature for storagePath.
func (s *Signer) Sign(storagePath string, ttl time.Duration, now time.Time) (int64, string) {
	exp := now.Add(ttl).Unix()
	return exp, s.compute(storagePath, exp)
}

// Verify checks a signature produced by Sign and that it has not expired.
func (s *Signer) Verify(storagePath string, exp int64, sig string, now time.Time) error {
	if now.Unix() > exp {
		return eris.New("evidence: signed link expired")
	}
	want := s.compute(storagePath, exp)
	if !hmac.Equal([]byte(want), []byte(sig)) {
		return eris.New("evidence: signature mismatch")
	}
	return nil
}

func (s *Signer) compute(storagePath string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(storagePath))
	mac.Write([]byte("\n"))
	mac.Write([]byte(strconv.FormatInt(exp, 10)))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
