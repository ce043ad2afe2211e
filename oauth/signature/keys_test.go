package signature_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-oauth-client/oauth/signature"
	"github.com/stretchr/testify/require"
)

func writeKeyFile(t *testing.T, block *pem.Block) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return path
}

func TestLoadRSAPrivateKeyFile(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("PKCS1", func(t *testing.T) {
		path := writeKeyFile(t, &pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		loaded, err := signature.LoadRSAPrivateKeyFile(path)
		require.NoError(t, err)
		require.Zero(t, loaded.N.Cmp(key.N))
	})

	t.Run("PKCS8", func(t *testing.T) {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)
		path := writeKeyFile(t, &pem.Block{Type: "PRIVATE KEY", Bytes: der})
		loaded, err := signature.LoadRSAPrivateKeyFile(path)
		require.NoError(t, err)
		require.Zero(t, loaded.N.Cmp(key.N))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := signature.LoadRSAPrivateKeyFile(filepath.Join(t.TempDir(), "absent.pem"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read signature key file")
	})

	t.Run("not PEM", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))
		_, err := signature.LoadRSAPrivateKeyFile(path)
		require.Error(t, err)
	})
}
