// Package version reports build information for the binaries in this repo.
//
// Version, BuildDate and GitCommit are set at build time with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/information-sharing-networks/solana-gateway/internal/version.Version=v1.2.0"
//
// when they are not set the values are taken from the embedded module build info.
package version

import (
	"runtime/debug"
)

var (
	Version   = ""
	BuildDate = ""
	GitCommit = ""
)

type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Get returns the build information, falling back to debug.ReadBuildInfo for unset fields.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}

	if info.Version == "" || info.Version == "(devel)" {
		info.Version = "dev"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	return info
}
