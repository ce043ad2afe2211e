package oauth

import (
	"sort"
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/encoding"
	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/pkg/errors"
)

// ToHeader renders the Authorization header value for the current request.
// For 1.x every canonical parameter plus the signature is rendered as
// `OAuth realm="...", oauth_x="...", ...` (percent-encoded, double-quoted,
// user extras excluded). For 2.0 the header is the bearer-style
// `OAuth <access_token>`, which requires an access token to have been
// obtained first.
func (c *Context) ToHeader(realm string) (string, error) {
	if c.version == protocol.Version20 {
		token := c.Get("access_token")
		if token == "" {
			return "", errors.Wrap(ErrNoAccessToken, "cannot build authorization header")
		}
		return "OAuth " + token, nil
	}

	params := c.withSignature(c.canonicalParams(false))
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names)+1)
	parts = append(parts, `realm="`+realm+`"`)
	for _, name := range names {
		parts = append(parts, name+`="`+encoding.PercentEncode(params[name])+`"`)
	}
	return "OAuth " + strings.Join(parts, ", "), nil
}

// ToURL returns the current request type's URL with any existing query
// string replaced by the canonical parameter string (including the
// signature when one has been computed). A non-empty overrideURL replaces
// the configured endpoint.
func (c *Context) ToURL(overrideURL ...string) (string, error) {
	var normalizedURL string
	var err error
	if len(overrideURL) > 0 && overrideURL[0] != "" {
		normalizedURL, err = c.normalizeURL(overrideURL[0])
	} else {
		normalizedURL, err = c.NormalizedRequestURL()
	}
	if err != nil {
		return "", err
	}
	query := encoding.Normalize(c.withSignature(c.canonicalParams(true)))
	if query == "" {
		return normalizedURL, nil
	}
	return normalizedURL + "?" + query, nil
}

// ToPostBody returns the form-encoded request body: empty for GET
// transports, otherwise the canonical parameter string. 1.x bodies include
// user extras; 2.0 bodies carry only the protocol parameters.
func (c *Context) ToPostBody() string {
	if strings.ToUpper(c.RequestMethod()) == defaultRequestMethod {
		return ""
	}
	includeExtras := c.version != protocol.Version20
	return encoding.Normalize(c.withSignature(c.canonicalParams(includeExtras)))
}

// withSignature adds the computed signature to a 1.x parameter set.
func (c *Context) withSignature(params map[string]string) map[string]string {
	if sig := c.fields["signature"]; sig != "" && c.version != protocol.Version20 {
		params[c.wireName("signature")] = sig
	}
	return params
}

// ToHash exports the canonical parameter set as a flat mapping for callers
// constructing their own transport. Server-assigned fields regenerated per
// request (the signature) are excluded.
func (c *Context) ToHash() Fields {
	params := c.canonicalParams(true)
	out := make(Fields, len(params))
	for name, value := range params {
		out[name] = value
	}
	return out
}

// FromHash merges an external name/value mapping into the context. Under
// 1.x semantics an oauth_ prefix marks the reserved namespace and is
// stripped before storage; unprefixed reserved names are stored directly
// and anything else becomes an extra parameter. 2.0 has no prefix
// convention.
func (c *Context) FromHash(fields Fields) *Context {
	for name, value := range fields {
		if c.version != protocol.Version20 {
			if stripped, hadPrefix := stripOAuthPrefix(name); hadPrefix {
				c.fields[stripped] = value
				continue
			}
		}
		c.Set(name, value)
	}
	return c
}

// FromPostBody parses a provider's form-encoded response body and merges
// the returned parameters (tokens, secrets, codes) into the context.
// A body containing literal whitespace is rejected: providers return
// error pages, not parameter strings, with spaces in them.
func (c *Context) FromPostBody(body string) error {
	if strings.ContainsAny(body, " \t\r\n") {
		return errors.Wrapf(ErrMalformedBody, "%q", truncate(body, 64))
	}
	fields := make(Fields)
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		value = strings.Trim(value, `"'`)
		fields[encoding.PercentDecode(name)] = encoding.PercentDecode(value)
	}
	c.FromHash(fields)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
