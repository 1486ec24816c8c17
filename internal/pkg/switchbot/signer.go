package switchbot

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	nonceLength   = 24
	nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Signer adds the authentication headers for one SwitchBot API version to
// an outgoing request
type Signer interface {
	SignRequest(req *http.Request, creds Credentials) error
}

// BearerSigner authenticates v1.0 requests with the bare token
type BearerSigner struct{}

func (BearerSigner) SignRequest(req *http.Request, creds Credentials) error {
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	return nil
}

// HMACSigner authenticates v1.1 requests.  Each request carries a fresh
// nonce and millisecond timestamp, and the signature
// base64(HMAC-SHA256(secret, token + t + nonce)).
type HMACSigner struct {
	now   func() time.Time
	nonce func() (string, error)
}

func NewHMACSigner() *HMACSigner {
	return &HMACSigner{
		now:   time.Now,
		nonce: NewNonce,
	}
}

func (s *HMACSigner) WithClock(now func() time.Time) *HMACSigner {
	ns := *s
	ns.now = now
	return &ns
}

func (s *HMACSigner) WithNonceSource(nonce func() (string, error)) *HMACSigner {
	ns := *s
	ns.nonce = nonce
	return &ns
}

func (s *HMACSigner) SignRequest(req *http.Request, creds Credentials) error {
	if creds.Secret == "" {
		return errors.New("no SwitchBot secret, cannot sign request")
	}

	nonce, err := s.nonce()
	if err != nil {
		return errors.Wrap(err, "generating nonce")
	}

	t := strconv.FormatInt(s.now().UnixNano()/int64(time.Millisecond), 10)

	req.Header.Set("Authorization", creds.Token)
	req.Header.Set("sign", Sign(creds.Token, creds.Secret, t, nonce))
	req.Header.Set("nonce", nonce)
	req.Header.Set("t", t)

	return nil
}

// Sign computes the v1.1 request signature for a token, timestamp and nonce
func Sign(token string, secret string, t string, nonce string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token + t + nonce))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// NewNonce returns 24 characters drawn uniformly from [A-Za-z0-9]
func NewNonce() (string, error) {
	max := big.NewInt(int64(len(nonceAlphabet)))
	b := make([]byte, nonceLength)

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = nonceAlphabet[n.Int64()]
	}

	return string(b), nil
}
