// Package datagrid is a spreadsheet-style grid interaction engine.
//
// The pure engine lives in package grid; package sheet renders it as a Bubble
// Tea component.
package datagrid

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseSemVer parses v (without a leading `v`).
func ParseSemVer(v string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, fmt.Errorf("invalid semver %q", v)
	}
	var out SemVer
	for i, dst := range []*int{&out.Major, &out.Minor, &out.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, fmt.Errorf("invalid semver %q: %w", v, err)
		}
		*dst = n
	}
	out.Pre, out.Build = m[4], m[5]
	return out, nil
}

// Version returns the library version (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseSemVer(v)
	return err == nil
}
