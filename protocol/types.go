package protocol

// Version represents the OAuth protocol revision a request context speaks.
// Determined once at construction, either explicitly or auto-detected from
// which credential fields are present, and never changes afterwards.
type Version string

const (
	// Version10 is OAuth 1.0: signature-based delegated authorization.
	// Detected when consumer_key and consumer_secret are both present.
	Version10 Version = "1.0"

	// Version10A is OAuth 1.0 Revision A. Same signing mechanics as 1.0
	// plus the verifier round-trip introduced to close the session
	// fixation attack. Detected when a verifier accompanies the consumer
	// credentials.
	Version10A Version = "1.0a"

	// Version20 is OAuth 2.0 (draft-10 style). Bearer tokens, no
	// per-request cryptographic signing. Detected when client_id and a
	// grant type are present.
	Version20 Version = "2.0"
)

// GrantType represents the OAuth 2.0 authorization flow variant. It scopes
// which request types and parameters are valid at the token endpoint.
type GrantType string

const (
	// WebServerGrant is the redirection-based flow for server-side
	// applications: authorization request, code exchange, refresh.
	WebServerGrant GrantType = "web_server"

	// UsernameGrant exchanges resource-owner credentials directly for an
	// access token (machine or legacy integrations only).
	UsernameGrant GrantType = "username"
)

// Request type names shared across versions. For 2.0 the names are scoped
// under the active grant type, except ProtectedResource and Refresh which
// resolve version-scoped (see Table.Lookup).
const (
	RequestToken      = "request_token"
	Authorization     = "authorization"
	AccessToken       = "access_token"
	ProtectedResource = "protected_resource"
	Refresh           = "refresh"
)

// ParamSet describes the parameters of one (version, request type) pair.
type ParamSet struct {
	// Required parameters must be present in the context before the
	// request can be prepared.
	Required []string `yaml:"required"`

	// API parameters form the canonical parameter set used for signing
	// and serialization.
	API []string `yaml:"api"`

	// Optional parameters join the canonical set only when present.
	Optional []string `yaml:"optional"`
}
