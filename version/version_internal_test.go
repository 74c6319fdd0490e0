package version

import (
	"runtime/debug"
	"testing"

	"github.com/elmerucr/E64-SQ/test"
)

func TestFromBuildInfo(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "false"},
	}

	ver, rev, rel := fromBuildInfo("v0.2.0", nil)
	test.ExpectEquality(t, ver, "v0.2.0")
	test.ExpectEquality(t, rev, "no revision information")
	test.ExpectSuccess(t, rel)

	ver, rev, rel = fromBuildInfo("(devel)", vcs)
	test.ExpectEquality(t, ver, "unreleased")
	test.ExpectEquality(t, rev, "abc123")
	test.ExpectFailure(t, rel)

	ver, _, rel = fromBuildInfo("v0.2.1-0.20260101120000-abc123def456", vcs)
	test.ExpectEquality(t, ver, "unreleased")
	test.ExpectFailure(t, rel)

	vcs[2].Value = "true"
	_, rev, _ = fromBuildInfo("(devel)", vcs)
	test.ExpectEquality(t, rev, "abc123+dirty")

	ver, _, rel = fromBuildInfo("(devel)", nil)
	test.ExpectEquality(t, ver, "local")
	test.ExpectFailure(t, rel)
}
