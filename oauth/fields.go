package oauth

import "strings"

// Fields is a bag of named configuration or wire parameters.
type Fields map[string]string

// reservedFields is the OAuth-reserved field namespace. Names outside this
// set are treated as user-supplied extra parameters.
var reservedFields = map[string]struct{}{
	// credentials and tokens
	"consumer_key":    {},
	"consumer_secret": {},
	"token":           {},
	"token_secret":    {},
	"verifier":        {},
	"callback":        {},
	"client_id":       {},
	"client_secret":   {},
	"access_token":    {},
	"refresh_token":   {},
	"code":            {},
	"scope":           {},
	"state":           {},
	"redirect_uri":    {},
	"username":        {},
	"password":        {},
	"type":            {},
	"grant_type":      {},
	"immediate":       {},
	"expires_in":      {},
	"expires":         {},

	// protocol fields
	"signature_method": {},
	"signature":        {},
	"timestamp":        {},
	"nonce":            {},
	"version":          {},
	"module_version":   {},

	// transport fields
	"request_method":         {},
	"request_token_url":      {},
	"authorization_url":      {},
	"access_token_url":       {},
	"protected_resource_url": {},
	"refresh_url":            {},
	"signature_key_file":     {},
	"realm":                  {},
}

func isReserved(name string) bool {
	_, ok := reservedFields[name]
	return ok
}

const oauthPrefix = "oauth_"

// stripOAuthPrefix removes the "oauth_" wire prefix used by 1.x parameter
// names, reporting whether it was present.
func stripOAuthPrefix(name string) (string, bool) {
	if strings.HasPrefix(name, oauthPrefix) {
		return name[len(oauthPrefix):], true
	}
	return name, false
}
