// Package version reports the version of the application from the build
// information embedded by the Go toolchain.
//
// A binary installed with "go install github.com/elmerucr/E64-SQ@v0.2.0" has
// a tagged module version and is a release. A binary built from a checkout
// has the version "(devel)" and is identified by its vcs revision instead.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// The name to use when referring to the application
const ApplicationName = "E64-SQ"

var (
	version  string
	revision string
	release  bool
)

// Version returns the version string, the revision string and whether this is
// a tagged release. The version is "unreleased" when built from a checkout
// and "local" when there is no vcs information at all, for example with
// "go run ."
func Version() (string, string, bool) {
	return version, revision, release
}

// Title returns a string that can be used in a window title. Releases show
// the version number and other builds show the revision
func Title() string {
	if release {
		return fmt.Sprintf("%s (%s)", ApplicationName, version)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, revision)
}

// fromBuildInfo decides the version, revision and release status from the
// main module version and the build settings
func fromBuildInfo(modVersion string, settings []debug.BuildSetting) (string, string, bool) {
	var vcs bool
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	// pseudo-versions and pre-releases contain a hyphen
	if strings.HasPrefix(modVersion, "v") && !strings.Contains(modVersion, "-") {
		return modVersion, rev, true
	}

	if vcs {
		return "unreleased", rev, false
	}
	return "local", rev, false
}

func init() {
	var modVersion string
	var settings []debug.BuildSetting

	info, ok := debug.ReadBuildInfo()
	if ok {
		modVersion = info.Main.Version
		settings = info.Settings
	}

	version, revision, release = fromBuildInfo(modVersion, settings)
}
