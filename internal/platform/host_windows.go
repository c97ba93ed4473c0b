//go:build windows

package platform

import (
	"golang.org/x/sys/windows"

	"github.com/mcplabs/mcp-greeter/internal/domain/sysinfo"
)

// hostVersion reads the OS version straight from the kernel.
// RtlGetVersion reports the real build number regardless of how the
// executable is manifested, unlike the deprecated GetVersion.
func hostVersion() (sysinfo.Version, error) {
	info := windows.RtlGetVersion()

	return sysinfo.Version{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
		Name:  "Windows",
	}, nil
}
