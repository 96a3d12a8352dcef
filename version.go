package wuffs

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// Version is the major.minor.patch version, as per https://semver.org/,
// packed into a uint64. The major number is the high 32 bits. The minor
// number is the middle 16 bits. The patch number is the low 16 bits.
// The version extension (such as "", "beta" or "rc.1") is part of the
// string representation (such as "1.2.3-beta") but not the packed form.
//
// All three of major, minor and patch being zero means that this is a
// work-in-progress version, not a release version, and has no backwards
// or forwards compatibility guarantees.
//
// Code generation steps may override these constants at build time.
const (
	VersionMajor uint64 = 0
	VersionMinor uint64 = 0
	VersionPatch uint64 = 0

	Version = VersionMajor<<32 | VersionMinor<<16 | VersionPatch

	VersionExtension = ""
	VersionString    = "0.0.0"
)

// MakeVersion packs major, minor and patch into the uint64 form.
func MakeVersion(major uint32, minor, patch uint16) uint64 {
	return uint64(major)<<32 | uint64(minor)<<16 | uint64(patch)
}

// VersionParts unpacks a packed version into major, minor and patch.
func VersionParts(v uint64) (major uint32, minor, patch uint16) {
	return uint32(v >> 32), uint16(v >> 16), uint16(v)
}

// ParseVersion parses a semver string such as "1.2.3" or "1.2.3-beta"
// into the packed form plus its extension. Components that do not fit
// the packed field widths are rejected.
func ParseVersion(s string) (packed uint64, extension string, err error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return 0, "", fmt.Errorf("parsing version %q: %w", s, err)
	}
	if v.Major > 0xFFFFFFFF || v.Minor > 0xFFFF || v.Patch > 0xFFFF {
		return 0, "", fmt.Errorf("version %q does not fit packed form", s)
	}
	return MakeVersion(uint32(v.Major), uint16(v.Minor), uint16(v.Patch)),
		string(v.PreRelease), nil
}
