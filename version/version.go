package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of the seqkit module.
const ModulePath = "github.com/kbukum/seqkit"

const devel = "(devel)"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns version information for the running binary.
func Get() *Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// resolve prefers link-time values, then the seqkit entry of bi.
func resolve(bi *debug.BuildInfo) *Info {
	info := &Info{Version: Version, GitCommit: GitCommit}

	if bi != nil {
		info.GoVersion = bi.GoVersion
		if info.Version == "dev" {
			if v := moduleVersion(bi); v != "" {
				info.Version = v
			}
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			}
		}
	}

	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	info.IsRelease = info.Version != "dev" && !info.IsDirty &&
		!strings.Contains(info.Version, "dirty")
	return info
}

// moduleVersion finds the seqkit version among the main module and deps.
func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath && bi.Main.Version != devel {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

// Short returns the version with the commit appended for dev builds.
func Short() string {
	return short(Get())
}

func short(info *Info) string {
	if info.IsRelease || info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}
