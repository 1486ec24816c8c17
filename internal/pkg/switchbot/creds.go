package switchbot

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
)

// Credentials authenticate calls to the SwitchBot cloud API.  The token
// is used by every API version, the secret only to sign v1.1 requests.
//
// A Credentials value is built once at startup and never modified.
type Credentials struct {
	Token  string
	Secret string
}

func NewCredentials(token string, secret string) Credentials {
	return Credentials{Token: token, Secret: secret}
}

func hashOf(s string) string {
	sum := sha1.Sum([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// obfuscate the token and secret when stringified
//
func (c Credentials) String() string {
	return fmt.Sprintf("token [%s], secret [%s]", hashOf(c.Token), hashOf(c.Secret))
}
