package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/ajxudir/sheetfilter/pkg/constants"
)

// Build information, set with -ldflags "-X github.com/ajxudir/sheetfilter/cmd.Version=v1.0.0".
var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// BuildTime is the build timestamp.
	BuildTime = ""
	// GitCommit is the commit the binary was built from. When unset the VCS
	// revision recorded by the Go toolchain is used.
	GitCommit = ""
)

// readBuildInfo is replaceable in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout())
	},
}

// writeVersion prints the version block shown by "version" and "--version".
//
// Parameters:
//   - w: Destination writer
func writeVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "sheetfilter %s\n", Version)
	if commit := buildCommit(); commit != "" {
		_, _ = fmt.Fprintf(w, "  Commit:  %s\n", commit)
	}
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Built:   %s\n", BuildTime)
	}
	_, _ = fmt.Fprintf(w, "  Go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// buildCommit returns GitCommit, else the vcs.revision build setting.
func buildCommit() string {
	if GitCommit != "" {
		return GitCommit
	}
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// isPrerelease reports whether v carries a semver prerelease suffix
// ("v1.2.0-rc.1", "1.2.0-beta"). The "v" prefix is optional.
func isPrerelease(v string) bool {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.IsValid(v) && semver.Prerelease(v) != ""
}

// buildWarnings returns the warning printed before every command for
// development and prerelease builds, or "" for releases.
func buildWarnings() string {
	switch {
	case Version == "dev":
		return constants.IconWarn + "  Development build: this is an unreleased version of sheetfilter.\n"
	case isPrerelease(Version):
		return fmt.Sprintf("%s  Prerelease build %s: check filtered workbooks before relying on them.\n",
			constants.IconWarn, Version)
	}
	return ""
}
