package version

import (
	"fmt"
	"strings"
)

// validCharacters is the set of characters allowed in appBuild.
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild can be set at link time with
// '-ldflags "-X github.com/kaspanet/hdkeychain/version.appBuild=foo"'.
// Builds containing characters outside validCharacters are ignored.
var appBuild string

var version = buildVersion(appBuild)

// Version returns the semantic version of hdkeychain, with the build metadata appended
// when it is valid.
func Version() string {
	return version
}

func buildVersion(build string) string {
	semver := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if build == "" || !isValidBuild(build) {
		return semver
	}
	return semver + "-" + build
}

func isValidBuild(build string) bool {
	for _, r := range build {
		if !strings.ContainsRune(validCharacters, r) {
			return false
		}
	}
	return true
}
