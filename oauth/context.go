// Package oauth implements a version-polymorphic OAuth request-signing
// engine. A Context holds the credentials and state of one OAuth flow
// (request_token -> authorization -> access_token -> protected_resource,
// or a 2.0 grant flow) and produces signed headers, URLs and bodies for an
// external HTTP client. OAuth 1.0, 1.0A and 2.0 are supported behind the
// same interface; the protocol version is auto-detected from the supplied
// credentials.
//
// A Context is mutated in place across the legs of a flow and is not safe
// for concurrent use; give each in-flight flow its own Context.
package oauth

import (
	"crypto/rsa"
	"time"

	"github.com/jrsteele09/go-oauth-client/oauth/signature"
	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/pkg/errors"
)

const (
	defaultRequestMethod   = "GET"
	defaultSignatureMethod = "HMAC-SHA1"
)

// Context is the mutable per-flow session object.
type Context struct {
	version     protocol.Version
	grant       protocol.GrantType
	table       *protocol.Table
	requestType string

	fields map[string]string // OAuth-reserved fields
	extra  map[string]string // user-supplied extra parameters
	rsaKey *rsa.PrivateKey

	nowTime func() time.Time // injectable for testing
	nonce   func() string    // injectable for testing
}

// Option modifies a Context at construction.
type Option func(*Context)

// WithNowTime sets the clock used for the oauth_timestamp (primarily for
// testing).
func WithNowTime(nowFunc func() time.Time) Option {
	return func(c *Context) {
		c.nowTime = nowFunc
	}
}

// WithNonceGenerator sets the nonce source (primarily for testing).
func WithNonceGenerator(nonceFunc func() string) Option {
	return func(c *Context) {
		c.nonce = nonceFunc
	}
}

// New constructs a Context from a bag of named fields: credentials,
// endpoint URLs, signature method and any extra parameters. The protocol
// version is taken from the "module_version" field when present, otherwise
// auto-detected from the credentials. Construction fails when no protocol
// configuration matches the detected version, or when RSA-SHA1 signing is
// requested without a loadable "signature_key_file".
func New(fields Fields, opts ...Option) (*Context, error) {
	c := &Context{
		fields:  make(map[string]string, len(fields)),
		extra:   make(map[string]string),
		nowTime: time.Now,
		nonce:   newNonce,
	}
	for name, value := range fields {
		if isReserved(name) {
			c.fields[name] = value
		} else {
			c.extra[name] = value
		}
	}
	if c.fields["request_method"] == "" {
		c.fields["request_method"] = defaultRequestMethod
	}
	if c.fields["signature_method"] == "" {
		c.fields["signature_method"] = defaultSignatureMethod
	}
	if c.fields["type"] == "" && c.fields["grant_type"] != "" {
		c.fields["type"] = c.fields["grant_type"]
	}

	table, err := protocol.Load()
	if err != nil {
		return nil, err
	}
	c.table = table

	c.version = detectVersion(c.fields)
	if !table.HasVersion(c.version) {
		return nil, errors.Wrapf(ErrNoConfiguration, "version %q", string(c.version))
	}
	c.grant = protocol.GrantType(c.fields["type"])
	if c.version != protocol.Version20 {
		// wire protocol version string, identical for both 1.x revisions
		c.fields["version"] = "1.0"
	}

	for _, opt := range opts {
		opt(c)
	}

	if signature.Canonical(c.fields["signature_method"]) == signature.MethodRSASHA1 {
		keyFile := c.fields["signature_key_file"]
		if keyFile == "" {
			return nil, errors.Wrap(ErrMissingParameter, "signature_key_file (required for RSA-SHA1)")
		}
		key, err := signature.LoadRSAPrivateKeyFile(keyFile)
		if err != nil {
			return nil, err
		}
		c.rsaKey = key
	}
	return c, nil
}

// detectVersion applies the credential-presence rules: an explicit
// module_version wins; consumer credentials imply 1.0 (1.0a with a
// verifier); a client_id plus grant type implies 2.0. An undetectable
// version returns the empty string, which matches no configuration.
func detectVersion(fields map[string]string) protocol.Version {
	if v := fields["module_version"]; v != "" {
		return protocol.Version(v)
	}
	if fields["consumer_key"] != "" && fields["consumer_secret"] != "" {
		if fields["verifier"] != "" {
			return protocol.Version10A
		}
		return protocol.Version10
	}
	if fields["client_id"] != "" && fields["type"] != "" {
		return protocol.Version20
	}
	return ""
}

// Version returns the protocol version detected at construction.
func (c *Context) Version() protocol.Version { return c.version }

// GrantType returns the active 2.0 grant type (empty for 1.x contexts).
func (c *Context) GrantType() protocol.GrantType { return c.grant }

// CurrentRequestType returns the request type selected by the last call to
// Request (empty before first use).
func (c *Context) CurrentRequestType() string { return c.requestType }

// Get returns the value of a field, consulting the reserved namespace
// first and the extra parameters second. Absent fields return "".
func (c *Context) Get(name string) string {
	if v, ok := c.fields[name]; ok {
		return v
	}
	return c.extra[name]
}

// Set stores a field value, routing reserved names into the OAuth
// namespace and everything else into the extra parameters.
func (c *Context) Set(name, value string) {
	if isReserved(name) {
		c.fields[name] = value
		return
	}
	c.extra[name] = value
}

// RequestMethod returns the HTTP method the request will be sent with.
func (c *Context) RequestMethod() string { return c.fields["request_method"] }

// Signature returns the computed oauth_signature ("" when the current
// request type is unsigned or no request has been prepared yet).
func (c *Context) Signature() string { return c.fields["signature"] }

// Timestamp returns the oauth_timestamp set by the last Request call.
func (c *Context) Timestamp() string { return c.fields["timestamp"] }

// Nonce returns the oauth_nonce set by the last Request call.
func (c *Context) Nonce() string { return c.fields["nonce"] }
