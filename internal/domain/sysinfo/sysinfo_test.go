package sysinfo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestVersionString verifies build number rendering and placeholder fallback.
func TestVersionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, UnknownVersion, Version{}.String())
	require.True(t, Version{}.IsZero())

	v := Version{Major: 10, Minor: 0, Build: 22631}
	require.False(t, v.IsZero())
	require.Equal(t, "22631", v.String())

	// Raw wins over the numeric triple when present.
	v.Raw = "6.8.0-51-generic"
	require.Equal(t, "6.8.0-51-generic", v.String())

	// A name alone still counts as collected information.
	named := Version{Name: "Ubuntu 24.04 LTS"}
	require.False(t, named.IsZero())
}

// TestActorString verifies the username@hostname audit format.
func TestActorString(t *testing.T) {
	t.Parallel()

	a := Actor{Hostname: "workstation-7", Username: "j.doe"}
	require.Equal(t, "j.doe@workstation-7", a.String())
}

// TestReportRender verifies the fixed three-line template with a frozen clock.
func TestReportRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	r := Report{
		Greeting: "Hello from Windows MCP Server (C++)!",
		Now:      now,
		Build:    Version{Major: 10, Minor: 0, Build: 26100},
	}

	var sb strings.Builder
	require.NoError(t, r.Render(&sb))

	require.Equal(
		t,
		"Hello from Windows MCP Server (C++)!\n"+
			"Built at: Wed Jan  1 12:00:00 2025\n"+
			"Windows Build: 26100\n",
		sb.String(),
	)
}

// TestReportRenderUnknownBuild verifies the placeholder reaches the output line.
func TestReportRenderUnknownBuild(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	r := Report{Greeting: "hi", Now: time.Now()}
	require.NoError(t, r.Render(&sb))
	require.Contains(t, sb.String(), "Windows Build: unknown\n")
}
