package sysinfo

import (
	"fmt"
	"io"
	"time"
)

// UnknownVersion is printed when the host version query fails.
// The output line must never be empty, so failures degrade to this placeholder.
const UnknownVersion = "unknown"

// TimestampLayout is the ctime(3)-style layout used for the "Built at" line.
const TimestampLayout = time.ANSIC

// Version is the build identifier reported by the host operating system.
type Version struct {
	// Major is the OS major version number.
	Major uint32
	// Minor is the OS minor version number.
	Minor uint32
	// Build is the OS build number, the value the greeter displays.
	Build uint32
	// Name is an optional human-readable platform name (e.g. from os-release).
	Name string
	// Raw is an optional free-form version string for platforms that do not
	// report a numeric triple. It takes precedence over Build when set.
	Raw string
}

// IsZero reports whether no version information was collected at all.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Build == 0 && v.Name == "" && v.Raw == ""
}

// String renders the displayable build identifier.
// A zero value renders the placeholder instead of garbage.
func (v Version) String() string {
	switch {
	case v.IsZero():
		return UnknownVersion
	case v.Raw != "":
		return v.Raw
	default:
		return fmt.Sprintf("%d", v.Build)
	}
}

// Actor identifies who is running the greeter, used for audit logging only.
type Actor struct {
	// Hostname is the machine name the greeter runs on.
	Hostname string
	// Username is the system user who launched the greeter.
	Username string
}

// String formats the actor as username@hostname.
func (a Actor) String() string {
	return a.Username + "@" + a.Hostname
}

// Report is one fully resolved greeting: every value read exactly once,
// ready to be rendered and discarded.
type Report struct {
	// Greeting is the fixed first output line.
	Greeting string
	// Now is the wall-clock reading taken at startup.
	Now time.Time
	// Build is the host version identifier.
	Build Version
}

// Render writes the report in the fixed output template:
// greeting, timestamp, build identifier.
func (r Report) Render(w io.Writer) error {
	_, err := fmt.Fprintf(
		w,
		"%s\n%s %s\n%s %s\n",
		r.Greeting,
		BuiltAtPrefix, r.Now.Format(TimestampLayout),
		BuildPrefix, r.Build.String(),
	)

	return err
}

const (
	// BuiltAtPrefix labels the timestamp line.
	BuiltAtPrefix = "Built at:"
	// BuildPrefix labels the host version line.
	BuildPrefix = "Windows Build:"
)
