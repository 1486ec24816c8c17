package switchbot_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/switchbot"
)

const (
	testToken  = "my-switchbot-token"
	testSecret = "my-switchbot-secret"
	testNonce  = "AbCdEfGhIjKlMnOpQrStUvWx"
)

var testTime = time.Unix(1700000000, 0)

func fixedClock() time.Time {
	return testTime
}

func fixedNonce() (string, error) {
	return testNonce, nil
}

func TestSign_GoldenVectors(t *testing.T) {
	tests := []struct {
		token, secret, ts, nonce string
		want                     string
	}{
		{testToken, testSecret, "1700000000000", testNonce, "7A2mCV5mCSG2ILaUyiPLL1jBSTwKtvyL9XOpy6RlrSM="},
		{"tok", "key", "1", "n", "itD2ZFfrrgLuFnYfHN3GAi/xXOXqqGVDKqM2yJr05bA="},
	}

	for _, tc := range tests {
		if got := switchbot.Sign(tc.token, tc.secret, tc.ts, tc.nonce); got != tc.want {
			t.Errorf("Sign(%q, %q, %q, %q) = %q, want %q", tc.token, tc.secret, tc.ts, tc.nonce, got, tc.want)
		}
	}
}

func TestNewNonce_LengthAndAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	for i := 0; i < 100; i++ {
		nonce, err := switchbot.NewNonce()
		if err != nil {
			t.Fatalf("NewNonce: %v", err)
		}
		if len(nonce) != 24 {
			t.Fatalf("expected 24 characters, got %d (%q)", len(nonce), nonce)
		}
		for _, c := range nonce {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("unexpected character %q in nonce %q", c, nonce)
			}
		}
	}
}

func TestNewNonce_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		nonce, err := switchbot.NewNonce()
		if err != nil {
			t.Fatalf("NewNonce: %v", err)
		}
		if seen[nonce] {
			t.Fatalf("nonce %q generated twice", nonce)
		}
		seen[nonce] = true
	}
}

func TestBearerSigner_SetsBearerToken(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)

	if err := (switchbot.BearerSigner{}).SignRequest(req, switchbot.NewCredentials(testToken, testSecret)); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}

	if got := req.Header.Get("Authorization"); got != "Bearer "+testToken {
		t.Errorf("expected Authorization=%q, got %q", "Bearer "+testToken, got)
	}
	for _, h := range []string{"sign", "nonce", "t"} {
		if req.Header.Get(h) != "" {
			t.Errorf("unexpected %s header on a bearer request", h)
		}
	}
}

func TestHMACSigner_Headers(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)
	signer := switchbot.NewHMACSigner().WithClock(fixedClock).WithNonceSource(fixedNonce)

	if err := signer.SignRequest(req, switchbot.NewCredentials(testToken, testSecret)); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}

	want := map[string]string{
		"Authorization": testToken,
		"sign":          "7A2mCV5mCSG2ILaUyiPLL1jBSTwKtvyL9XOpy6RlrSM=",
		"nonce":         testNonce,
		"t":             "1700000000000",
	}
	for h, v := range want {
		if got := req.Header.Get(h); got != v {
			t.Errorf("expected %s=%q, got %q", h, v, got)
		}
	}
}

func TestHMACSigner_FreshNoncePerRequest(t *testing.T) {
	signer := switchbot.NewHMACSigner().WithClock(fixedClock)
	creds := switchbot.NewCredentials(testToken, testSecret)

	first, _ := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)
	second, _ := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)

	if err := signer.SignRequest(first, creds); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if err := signer.SignRequest(second, creds); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}

	if first.Header.Get("t") != second.Header.Get("t") {
		t.Fatalf("expected the same timestamp from a fixed clock")
	}
	if first.Header.Get("nonce") == second.Header.Get("nonce") {
		t.Errorf("expected different nonces, both %q", first.Header.Get("nonce"))
	}
	if first.Header.Get("sign") == second.Header.Get("sign") {
		t.Errorf("expected different signatures for different nonces")
	}
}

func TestHMACSigner_NoSecret(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "http://example.invalid/", nil)

	if err := switchbot.NewHMACSigner().SignRequest(req, switchbot.NewCredentials(testToken, "")); err == nil {
		t.Fatal("expected an error signing without a secret")
	}
}

func TestCredentials_StringHidesSecrets(t *testing.T) {
	s := switchbot.NewCredentials(testToken, testSecret).String()

	if strings.Contains(s, testToken) || strings.Contains(s, testSecret) {
		t.Errorf("credentials leaked in %q", s)
	}
	if !strings.Contains(s, "qmzJYV5chaaS0ceDyc6Uzr5V4Xc=") {
		t.Errorf("expected the hashed secret in %q", s)
	}
}
