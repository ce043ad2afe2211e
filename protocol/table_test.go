package protocol_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := protocol.Load()
	require.NoError(t, err)

	t.Run("cached across calls", func(t *testing.T) {
		again, err := protocol.Load()
		require.NoError(t, err)
		require.Same(t, table, again)
	})

	t.Run("all versions present", func(t *testing.T) {
		for _, v := range []protocol.Version{protocol.Version10, protocol.Version10A, protocol.Version20} {
			require.True(t, table.HasVersion(v), "missing version %s", v)
		}
		require.False(t, table.HasVersion(protocol.Version("3.0")))
		require.False(t, table.HasVersion(protocol.Version("")))
	})

	t.Run("sign flags", func(t *testing.T) {
		require.True(t, table.SignMessage(protocol.Version10))
		require.True(t, table.SignMessage(protocol.Version10A))
		require.False(t, table.SignMessage(protocol.Version20))
	})
}

func TestLookup(t *testing.T) {
	table, err := protocol.Load()
	require.NoError(t, err)

	t.Run("1.0 request_token", func(t *testing.T) {
		set, ok := table.Lookup(protocol.Version10, "", protocol.RequestToken)
		require.True(t, ok)
		require.Contains(t, set.Required, "consumer_key")
		require.Contains(t, set.API, "nonce")
		require.Contains(t, set.Optional, "callback")
	})

	t.Run("1.0a request_token requires callback", func(t *testing.T) {
		set, ok := table.Lookup(protocol.Version10A, "", protocol.RequestToken)
		require.True(t, ok)
		require.Contains(t, set.Required, "callback")
	})

	t.Run("1.0a access_token requires verifier", func(t *testing.T) {
		set, ok := table.Lookup(protocol.Version10A, "", protocol.AccessToken)
		require.True(t, ok)
		require.Contains(t, set.Required, "verifier")
		require.Contains(t, set.API, "verifier")
	})

	t.Run("2.0 grant-scoped authorization", func(t *testing.T) {
		set, ok := table.Lookup(protocol.Version20, protocol.WebServerGrant, protocol.Authorization)
		require.True(t, ok)
		require.Contains(t, set.Required, "client_id")
		require.Contains(t, set.Optional, "state")
	})

	t.Run("2.0 protected_resource resolves version-scoped", func(t *testing.T) {
		withGrant, ok := table.Lookup(protocol.Version20, protocol.WebServerGrant, protocol.ProtectedResource)
		require.True(t, ok)
		withoutGrant, ok := table.Lookup(protocol.Version20, "", protocol.ProtectedResource)
		require.True(t, ok)
		require.Equal(t, withGrant, withoutGrant)
	})

	t.Run("2.0 refresh resolves version-scoped", func(t *testing.T) {
		set, ok := table.Lookup(protocol.Version20, "", protocol.Refresh)
		require.True(t, ok)
		require.Contains(t, set.Required, "refresh_token")
	})

	t.Run("unknown request type", func(t *testing.T) {
		_, ok := table.Lookup(protocol.Version10, "", "bogus")
		require.False(t, ok)
	})

	t.Run("grant-scoped type invisible to 1.x", func(t *testing.T) {
		_, ok := table.Lookup(protocol.Version10, protocol.WebServerGrant, protocol.Refresh)
		require.False(t, ok)
	})

	t.Run("unknown version", func(t *testing.T) {
		_, ok := table.Lookup(protocol.Version(""), "", protocol.RequestToken)
		require.False(t, ok)
	})
}
