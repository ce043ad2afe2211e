package oauth

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/encoding"
	"github.com/jrsteele09/go-oauth-client/oauth/signature"
	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/pkg/errors"
)

// requestURL returns the endpoint configured for the current request type,
// stored in the "<request_type>_url" field. A 2.0 refresh request falls
// back to the access token endpoint, where providers serve refreshes.
func (c *Context) requestURL() (string, error) {
	if c.requestType == "" {
		return "", errors.Wrap(ErrNoRequestURL, "no request type selected")
	}
	raw := c.fields[c.requestType+"_url"]
	if raw == "" && c.requestType == protocol.Refresh {
		raw = c.fields["access_token_url"]
	}
	if raw == "" {
		return "", errors.Wrapf(ErrNoRequestURL, "request type %q", c.requestType)
	}
	return raw, nil
}

// NormalizedRequestURL returns the current request type's URL with any
// query string and fragment stripped, as used in the signature base string.
func (c *Context) NormalizedRequestURL() (string, error) {
	raw, err := c.requestURL()
	if err != nil {
		return "", err
	}
	return c.normalizeURL(raw)
}

func (c *Context) normalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid URL for request type %q", c.requestType)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// canonicalParams assembles the canonical parameter set for the current
// request type: the api parameters, any optional parameters that are
// present, and (when asked for) the user-supplied extras. 1.x names carry
// the oauth_ wire prefix. The signature itself is always excluded.
func (c *Context) canonicalParams(includeExtras bool) map[string]string {
	set, ok := c.table.Lookup(c.version, c.grant, c.requestType)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(set.API)+len(set.Optional)+len(c.extra))
	add := func(name string) {
		if name == "signature" {
			return
		}
		if v := c.paramValue(name); v != "" {
			out[c.wireName(name)] = v
		}
	}
	for _, name := range set.API {
		add(name)
	}
	for _, name := range set.Optional {
		add(name)
	}
	if includeExtras {
		for name, value := range c.extra {
			if value != "" {
				out[name] = value
			}
		}
	}
	return out
}

func (c *Context) paramValue(name string) string {
	// the wire "type" of a 2.0 refresh request is the request type, not
	// the grant type
	if name == "type" && c.requestType == protocol.Refresh {
		return protocol.Refresh
	}
	return c.Get(name)
}

func (c *Context) wireName(name string) string {
	if c.version == protocol.Version20 {
		return name
	}
	return oauthPrefix + name
}

// SignatureBaseString builds the canonical byte string the signature is
// computed over: percent-encoded HTTP method (uppercase), normalized
// request URL and normalized parameter string, joined by "&".
func (c *Context) SignatureBaseString() (string, error) {
	normalizedURL, err := c.NormalizedRequestURL()
	if err != nil {
		return "", err
	}
	params := encoding.Normalize(c.canonicalParams(true))
	return encoding.PercentEncode(strings.ToUpper(c.RequestMethod())) + "&" +
		encoding.PercentEncode(normalizedURL) + "&" +
		encoding.PercentEncode(params), nil
}

// SignatureKey returns the composed signing secret used by HMAC-SHA1 and
// PLAINTEXT: percent-encoded consumer secret and token secret joined by
// "&". The "&" is present even when the token secret is empty.
func (c *Context) SignatureKey() string {
	return encoding.PercentEncode(c.fields["consumer_secret"]) + "&" +
		encoding.PercentEncode(c.fields["token_secret"])
}

func (c *Context) signatureKeyMaterial() signature.Key {
	if signature.Canonical(c.fields["signature_method"]) == signature.MethodRSASHA1 {
		return signature.Key{PrivateKey: c.rsaKey}
	}
	return signature.Key{Secret: c.SignatureKey()}
}

// sign dispatches to the strategy named by signature_method and stores the
// result in the signature field.
func (c *Context) sign() error {
	signer, err := signature.New(c.fields["signature_method"], c.signatureKeyMaterial())
	if err != nil {
		return err
	}
	base, err := c.SignatureBaseString()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(base)
	if err != nil {
		return err
	}
	c.fields["signature"] = sig
	return nil
}
