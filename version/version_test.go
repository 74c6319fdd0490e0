package version_test

import (
	"strings"
	"testing"

	"github.com/elmerucr/E64-SQ/test"
	"github.com/elmerucr/E64-SQ/version"
)

func TestTitle(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(version.Title(), version.ApplicationName))

	ver, rev, _ := version.Version()
	test.ExpectInequality(t, ver, "")
	test.ExpectInequality(t, rev, "")
}
