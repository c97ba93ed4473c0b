package platform

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/mcplabs/mcp-greeter/internal/domain/sysinfo"
)

// Provider supplies the two host readings the greeter displays.
// The real implementation is HostProvider; tests inject fakes.
type Provider interface {
	// CurrentTime returns a wall-clock reading.
	CurrentTime() time.Time
	// CurrentVersion returns the host OS build identifier.
	CurrentVersion() (sysinfo.Version, error)
}

// HostProvider reads time and version from the machine the program runs on.
type HostProvider struct{}

// NewHostProvider returns a provider backed by the real host.
func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

// CurrentTime returns the system clock reading in the local timezone.
func (*HostProvider) CurrentTime() time.Time {
	return time.Now()
}

// CurrentVersion queries the host OS for its version record.
// The query itself is platform-specific, see the host_*.go files.
func (*HostProvider) CurrentVersion() (sysinfo.Version, error) {
	return hostVersion()
}

// Identity gathers host and user information for audit logging.
func Identity() (sysinfo.Actor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return sysinfo.Actor{}, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return sysinfo.Actor{}, fmt.Errorf("current user: %w", err)
	}

	return sysinfo.Actor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}
