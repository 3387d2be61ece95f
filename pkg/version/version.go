// Package version holds the build version, set at link time:
//
//	go build -ldflags "-X github.com/rshade/gridview/pkg/version.version=v1.2.0"
package version

import "runtime/debug"

//nolint:gochecknoglobals // Set by the linker.
var version = "dev"

// GetVersion returns the linker-provided version, else the module version
// recorded in the build info, else "dev".
func GetVersion() string {
	if version != "dev" && version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
