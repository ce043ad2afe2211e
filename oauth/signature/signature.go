// Package signature provides the OAuth 1.0 signature strategies:
// HMAC-SHA1, RSA-SHA1 and PLAINTEXT. Each strategy consumes a signature
// base string and key material and produces the oauth_signature value.
package signature

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Method is the canonical name of a signature strategy.
type Method string

const (
	// MethodHMACSHA1 signs with base64(HMAC-SHA1(base string, composed secret)).
	MethodHMACSHA1 Method = "HMAC-SHA1"

	// MethodRSASHA1 signs the SHA1 digest of the base string with an RSA
	// private key (PKCS#1 v1.5), base64 encoded.
	MethodRSASHA1 Method = "RSA-SHA1"

	// MethodPlaintext returns the composed secret itself, unencoded. Only
	// safe over a confidential transport.
	MethodPlaintext Method = "PLAINTEXT"
)

var nonWord = regexp.MustCompile(`\W`)

// Canonical maps a method name to its canonical form: case-insensitive,
// with any run of non-word characters treated as the separator, so
// "hmac_sha1" and "HMAC-SHA1" resolve to the same strategy.
func Canonical(name string) Method {
	normalized := nonWord.ReplaceAllString(strings.ToUpper(name), "_")
	switch normalized {
	case "HMAC_SHA1":
		return MethodHMACSHA1
	case "RSA_SHA1":
		return MethodRSASHA1
	case "PLAINTEXT":
		return MethodPlaintext
	}
	return Method(name)
}

// Key is the material a strategy signs with. Secret is the composed
// "percent_encode(consumer_secret)&percent_encode(token_secret)" string
// used by HMAC-SHA1 and PLAINTEXT; PrivateKey is the externally loaded RSA
// key used by RSA-SHA1.
type Key struct {
	Secret     string
	PrivateKey *rsa.PrivateKey
}

// Signer produces a signature value over a base string.
type Signer interface {
	// Method returns the canonical strategy name.
	Method() Method

	// Sign computes the oauth_signature value for the base string.
	Sign(baseString string) (string, error)
}

// strategies is the process-wide registry of known strategies. It is
// populated once at package initialization and read-only afterwards.
var strategies = map[Method]func(Key) (Signer, error){
	MethodHMACSHA1: func(k Key) (Signer, error) {
		return hmacSHA1Signer{secret: k.Secret}, nil
	},
	MethodRSASHA1: func(k Key) (Signer, error) {
		if k.PrivateKey == nil {
			return nil, errors.New("RSA-SHA1 key lacks signing capability")
		}
		return rsaSHA1Signer{key: k.PrivateKey}, nil
	},
	MethodPlaintext: func(k Key) (Signer, error) {
		return plaintextSigner{secret: k.Secret}, nil
	},
}

// New resolves a strategy by name. The name is canonicalized first; an
// unknown name is an error.
func New(name string, key Key) (Signer, error) {
	factory, ok := strategies[Canonical(name)]
	if !ok {
		return nil, errors.Errorf("unable to load signing strategy %q", name)
	}
	return factory(key)
}

type hmacSHA1Signer struct {
	secret string
}

func (hmacSHA1Signer) Method() Method { return MethodHMACSHA1 }

func (s hmacSHA1Signer) Sign(baseString string) (string, error) {
	mac := hmac.New(sha1.New, []byte(s.secret))
	mac.Write([]byte(baseString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

type rsaSHA1Signer struct {
	key *rsa.PrivateKey
}

func (rsaSHA1Signer) Method() Method { return MethodRSASHA1 }

func (s rsaSHA1Signer) Sign(baseString string) (string, error) {
	digest := sha1.Sum([]byte(baseString))
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA1, digest[:])
	if err != nil {
		return "", errors.Wrap(err, "failed to sign base string with RSA key")
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

type plaintextSigner struct {
	secret string
}

func (plaintextSigner) Method() Method { return MethodPlaintext }

func (s plaintextSigner) Sign(string) (string, error) {
	return s.secret, nil
}
