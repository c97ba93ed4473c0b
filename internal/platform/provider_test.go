package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestHostProviderCurrentTime ensures the clock reading tracks real time.
func TestHostProviderCurrentTime(t *testing.T) {
	t.Parallel()

	got := NewHostProvider().CurrentTime()
	require.WithinDuration(t, time.Now(), got, 5*time.Second)
}

// TestHostProviderCurrentVersion ensures a successful query yields a
// displayable, non-zero identifier.
func TestHostProviderCurrentVersion(t *testing.T) {
	t.Parallel()

	v, err := NewHostProvider().CurrentVersion()
	if err != nil {
		t.Skipf("host version query unavailable here: %v", err)
	}

	require.False(t, v.IsZero())
	require.NotEmpty(t, v.String())
}

// TestIdentity ensures hostname and username are detected and non-empty.
func TestIdentity(t *testing.T) {
	t.Parallel()

	a, err := Identity()
	require.NoError(t, err)
	require.NotEmpty(t, a.Hostname)
	require.NotEmpty(t, a.Username)
}
