package oauth

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Request selects and prepares a request type: it merges any extra fields
// into the context, validates that every required parameter is present,
// stamps a fresh timestamp and nonce, and — for versions that sign — computes
// and stores the signature. The context is mutated in place.
func (c *Context) Request(requestType string, extra ...Fields) error {
	set, ok := c.table.Lookup(c.version, c.grant, requestType)
	if !ok {
		return errors.Wrapf(ErrUnsupportedRequestType, "%q (version %s, grant %q)",
			requestType, c.version, string(c.grant))
	}
	c.requestType = requestType
	for _, f := range extra {
		c.FromHash(f)
	}
	if err := c.validateRequired(set); err != nil {
		return err
	}
	return c.preload()
}

// validateRequired reports every missing required parameter, not just the
// first, so a misconfigured caller can fix them in one pass.
func (c *Context) validateRequired(set protocol.ParamSet) error {
	var missing []string
	for _, name := range set.Required {
		if c.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return errors.Wrapf(ErrMissingParameter, "%s (request type %q)",
		strings.Join(missing, ", "), c.requestType)
}

// preload stamps the per-request protocol fields and signs when the
// version requires it.
func (c *Context) preload() error {
	c.fields["timestamp"] = strconv.FormatInt(c.nowTime().Unix(), 10)
	c.fields["nonce"] = c.nonce()

	// CSRF guard: a 2.0 authorization request always carries a state
	// value, generated when the caller supplies none.
	if c.version == protocol.Version20 && c.requestType == protocol.Authorization && c.fields["state"] == "" {
		c.fields["state"] = uuid.NewString()
	}

	signed := false
	if c.table.SignMessage(c.version) {
		if err := c.sign(); err != nil {
			return err
		}
		signed = true
	}
	log.Debug().
		Str("version", string(c.version)).
		Str("request_type", c.requestType).
		Bool("signed", signed).
		Msg("prepared OAuth request")
	return nil
}

// Response resets the token credentials so the provider's response body
// can cleanly repopulate them via FromPostBody. Returns the context for
// chaining.
func (c *Context) Response() *Context {
	delete(c.fields, "token")
	delete(c.fields, "token_secret")
	return c
}
