// Package googleauth validates Google-issued ID tokens against the
// tokeninfo endpoint and enforces the organizational-domain policy.
package googleauth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrMissingToken = errors.New("missing id token")
var ErrProviderRejected = errors.New("provider rejected token")
var ErrDomainMismatch = errors.New("account outside allowed domain")
var ErrProviderUnreachable = errors.New("provider unreachable")

// Claims are the tokeninfo response fields this service cares about.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	HostedDomain  string `json:"hd"`
	Audience      string `json:"aud"`
	Name          string `json:"name"`
}

// Verifier performs the one outbound call of the auth subsystem. The HTTP
// client carries a fixed timeout so an unresponsive provider degrades to an
// authentication failure instead of stalling the request.
type Verifier struct {
	client        *http.Client
	tokenInfoURL  string
	clientID      string
	allowedDomain string
}

func NewVerifier(tokenInfoURL, clientID, allowedDomain string, timeout time.Duration) *Verifier {
	return &Verifier{
		client:        &http.Client{Timeout: timeout},
		tokenInfoURL:  tokenInfoURL,
		clientID:      clientID,
		allowedDomain: allowedDomain,
	}
}

// Verify introspects idToken with the provider and checks, in order:
// audience, email_verified, hosted domain and the email's domain suffix.
// The returned email is lower-cased.
func (v *Verifier) Verify(idToken string) (Claims, error) {
	if strings.TrimSpace(idToken) == "" {
		return Claims{}, ErrMissingToken
	}
	resp, err := v.client.Get(v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return Claims{}, ErrProviderUnreachable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Claims{}, ErrProviderRejected
	}
	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return Claims{}, ErrProviderRejected
	}
	if claims.Audience != v.clientID {
		return Claims{}, ErrProviderRejected
	}
	claims.Email = strings.ToLower(claims.Email)
	if !claims.EmailVerified ||
		claims.HostedDomain != v.allowedDomain ||
		!strings.HasSuffix(claims.Email, "@"+v.allowedDomain) {
		return Claims{}, ErrDomainMismatch
	}
	return claims, nil
}
