package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// BuildInfo is the version metadata stamped into a binary through
// -ldflags "-X main.buildVersion=...".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo trims the linker values; empty ones become "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders a single line such as "v1.2.0 (commit 3f2a9c1, built 2026-01-02)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)",
		orNotAvailable(b.Version), orNotAvailable(b.Commit), orNotAvailable(b.Date))
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
