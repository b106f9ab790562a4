package ldtk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/schema/v063"
	"github.com/milk9111/ldtk/schema/v092"
	"github.com/milk9111/ldtk/schema/v113"
	"github.com/milk9111/ldtk/wire"
	"golang.org/x/mod/semver"
)

// Version selects a schema revision.
type Version int

const (
	VersionAuto Version = iota
	Version063
	Version092
	Version113
)

func (v Version) String() string {
	switch v {
	case Version063:
		return v063.JSONVersion
	case Version092:
		return v092.JSONVersion
	case Version113:
		return v113.JSONVersion
	default:
		return "auto"
	}
}

// ParseVersion accepts "auto", an empty string, or any jsonVersion; the
// latter maps to the revision that reads it.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return VersionAuto, nil
	}
	return forJSONVersion(s)
}

// DetectVersion reads jsonVersion from a root document and picks the
// revision for it: below 0.9.0 is 0.6.3, below 1.0.0 is 0.9.2, anything
// newer is 1.1.3.
func DetectVersion(data []byte) (Version, error) {
	var head struct {
		JSONVersion string `json:"jsonVersion"`
	}
	if err := wire.Unmarshal(data, &head); err != nil {
		return VersionAuto, classify(err, "")
	}
	v, err := forJSONVersion(head.JSONVersion)
	if err != nil {
		mismatch := wire.Mismatch("semantic version", fmt.Sprintf("%q", head.JSONVersion))
		return VersionAuto, classify(wire.Within(mismatch, "jsonVersion"), "")
	}
	return v, nil
}

var errNotSemver = errors.New("not a semantic version")

func forJSONVersion(s string) (Version, error) {
	sv := config.Canonical(s)
	if !semver.IsValid(sv) {
		return VersionAuto, fmt.Errorf("ldtk: version %q: %w", s, errNotSemver)
	}
	switch {
	case semver.Compare(sv, "v0.9.0") < 0:
		return Version063, nil
	case semver.Compare(sv, "v1.0.0") < 0:
		return Version092, nil
	default:
		return Version113, nil
	}
}
