//go:build linux

package platform

import (
	"fmt"

	"github.com/acobaugh/osrelease"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/mcplabs/mcp-greeter/internal/domain/sysinfo"
)

// hostVersion reports the kernel release as the build identifier,
// with the os-release pretty name attached when available.
func hostVersion() (sysinfo.Version, error) {
	kernel, err := host.KernelVersion()
	if err != nil {
		return sysinfo.Version{}, fmt.Errorf("kernel version: %w", err)
	}

	v := sysinfo.Version{Raw: kernel}

	// Best effort: a machine without /etc/os-release is still a valid host.
	if release, err := osrelease.Read(); err == nil {
		switch {
		case release["PRETTY_NAME"] != "":
			v.Name = release["PRETTY_NAME"]
		case release["NAME"] != "":
			v.Name = release["NAME"]
		}
	}

	return v, nil
}
