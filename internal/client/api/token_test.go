package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenSource_SetKeepsRefreshWhenEmpty(t *testing.T) {
	ts := &TokenSource{}
	ts.Set("a1", "r1")
	ts.Set("a2", "")
	require.Equal(t, "a2", ts.Access())
	require.Equal(t, "r1", ts.Refresh())

	ts.Clear()
	require.Empty(t, ts.Access())
	require.Empty(t, ts.Refresh())
}

func TestAccessExpired(t *testing.T) {
	ts := &TokenSource{}
	require.True(t, ts.AccessExpired(0), "missing token is expired")

	ts.Set("not-a-jwt", "")
	require.True(t, ts.AccessExpired(0), "garbage token is expired")

	ts.Set(signedToken(t, time.Hour), "")
	require.False(t, ts.AccessExpired(30*time.Second))
	require.True(t, ts.AccessExpired(2*time.Hour), "leeway larger than remaining lifetime")

	ts.Set(signedToken(t, -time.Minute), "")
	require.True(t, ts.AccessExpired(0))
}
