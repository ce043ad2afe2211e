package oauth

import "crypto/rand"

const (
	nonceLength   = 16
	nonceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// newNonce returns a fresh 16-character nonce drawn from [0-9a-zA-Z].
// Collision avoidance across concurrent requests is all that is required
// of it; it pairs with the timestamp to prevent replay.
func newNonce() string {
	buf := make([]byte, nonceLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}
	return string(buf)
}
