// Package misc provides small helpers needed across the program.
package misc

import "runtime/debug"

// set at build time via ldflags
var (
	appName = "cssel"
	version string
	gitHash string
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if len(version) == 0 {
		version = "dev-snapshot"
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
	}
	return version
}

func GetGitHash() string {
	if len(gitHash) == 0 {
		gitHash = "unknown"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					gitHash = s.Value
					break
				}
			}
		}
	}
	return gitHash
}
