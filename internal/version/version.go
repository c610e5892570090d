// Package version reads semantic version tags.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

const tagRefPrefix = "refs/tags/"

type SemVer struct {
	Major int
	Minor int
	Patch int
}

// ParseSemVer parses "vMAJOR.MINOR.PATCH" or "MAJOR.MINOR.PATCH", with or
// without a refs/tags/ prefix.
func ParseSemVer(tag string) (SemVer, error) {
	trimmed := strings.TrimSpace(tag)
	trimmed = strings.TrimPrefix(trimmed, tagRefPrefix)
	trimmed = strings.TrimPrefix(trimmed, "v")

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return SemVer{}, fmt.Errorf("invalid semantic version: %s", tag)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return SemVer{}, fmt.Errorf("invalid version component %q in %s: %w", part, tag, err)
		}
		if n < 0 {
			return SemVer{}, fmt.Errorf("semantic version components must be non-negative: %s", tag)
		}
		nums[i] = n
	}

	return SemVer{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v SemVer) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v SemVer) LessThan(other SemVer) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ShortTag strips the refs/tags/ prefix from a tag ref.
func ShortTag(ref string) string {
	return strings.TrimPrefix(ref, tagRefPrefix)
}

// Latest returns the highest semantic version among tags and the tag it came
// from. Tags that are not semantic versions are ignored.
func Latest(tags []string) (SemVer, string, bool) {
	var (
		best    SemVer
		bestTag string
		found   bool
	)
	for _, tag := range tags {
		v, err := ParseSemVer(tag)
		if err != nil {
			continue
		}
		if !found || best.LessThan(v) {
			best, bestTag, found = v, ShortTag(tag), true
		}
	}
	return best, bestTag, found
}
