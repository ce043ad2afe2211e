package oauth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Token exports the obtained 2.0 credentials as an *oauth2.Token, so the
// context can hand off to golang.org/x/oauth2 transports once the flow
// completes. Returns nil before an access token has been obtained. Expiry
// is derived from the provider's expires_in (or expires) hint.
func (c *Context) Token() *oauth2.Token {
	access := c.Get("access_token")
	if access == "" {
		return nil
	}
	tok := &oauth2.Token{
		AccessToken:  access,
		TokenType:    "Bearer",
		RefreshToken: c.Get("refresh_token"),
	}
	hint := c.Get("expires_in")
	if hint == "" {
		hint = c.Get("expires")
	}
	if hint != "" {
		if secs, err := strconv.ParseInt(hint, 10, 64); err == nil {
			tok.Expiry = c.nowTime().Add(time.Duration(secs) * time.Second)
		}
	}
	return tok
}

// AccessTokenClaims decodes the claims of a JWT-shaped access token
// without verifying its signature. Verification belongs to the issuing
// provider; this is a local inspection so callers can act on claims such
// as exp before sending a request.
func (c *Context) AccessTokenClaims() (jwt.MapClaims, error) {
	access := c.Get("access_token")
	if access == "" {
		return nil, ErrNoAccessToken
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil, errors.Wrap(err, "access token is not a JWT")
	}
	return claims, nil
}

// AccessTokenExpiry returns the exp claim of a JWT-shaped access token.
func (c *Context) AccessTokenExpiry() (time.Time, error) {
	claims, err := c.AccessTokenClaims()
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("access token has no exp claim")
	}
	return exp.Time, nil
}
