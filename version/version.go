package version

import (
	"fmt"
	"strings"
)

const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild may be set at link time with
// '-ldflags "-X github.com/nrgnet/nrgd/version.appBuild=foo"'.
// Values holding characters outside validCharacters are ignored.
var appBuild string

var version = ""

// Version returns the semantic version of the nrgd tools, with the build
// metadata appended when it is valid.
func Version() string {
	if version == "" {
		version = formatVersion(appBuild)
	}
	return version
}

func formatVersion(build string) string {
	base := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if !isValidBuild(build) {
		return base
	}
	return base + "-" + build
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(validCharacters, r) {
			return false
		}
	}
	return true
}
