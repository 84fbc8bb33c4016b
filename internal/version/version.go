// Package version carries the compiler's release version.
package version

import "github.com/Masterminds/semver/v3"

// Version is the semantic version of this build. It may be overridden at
// link time with -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "0.2.0"

// Current parses Version, falling back to 0.0.0 when a link-time override
// is not valid semver.
func Current() *semver.Version {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return semver.MustParse("0.0.0")
	}
	return v
}
