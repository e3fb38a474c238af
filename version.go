package levelobjects

import (
	"fmt"
	"regexp"
)

// Version tokens are concatenated into table names, so they are restricted to
// a strict allow-list before any SQL text is built.
var versionPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,32}$`)

func ValidateVersion(version string) error {
	if !versionPattern.MatchString(version) {
		return newErrInvalidVersion(version)
	}
	return nil
}

func newErrInvalidVersion(version string) ErrInvalidVersion {
	return ErrInvalidVersion{
		Version: version,
	}
}

// ErrInvalidVersion is returned when a version token fails the allow-list
// check, before any query is constructed or executed.
type ErrInvalidVersion struct {
	Version string
}

func (e ErrInvalidVersion) Error() string {
	return fmt.Sprintf("invalid version %q: versions must be 1-32 characters of [A-Za-z0-9_]", e.Version)
}
