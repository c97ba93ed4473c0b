//go:build !windows && !linux

package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/mcplabs/mcp-greeter/internal/domain/sysinfo"
)

// hostVersion reports whatever version record gopsutil can collect here.
func hostVersion() (sysinfo.Version, error) {
	info, err := host.Info()
	if err != nil {
		return sysinfo.Version{}, fmt.Errorf("host info: %w", err)
	}

	v := sysinfo.Version{
		Raw:  info.KernelVersion,
		Name: info.Platform,
	}
	if info.PlatformVersion != "" {
		v.Raw = info.PlatformVersion
	}

	return v, nil
}
