package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/feedbackhub/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/feedbackhub/internal/version.Commit=abc123"
//
// Unset values are filled from the VCS stamp in the build info, then from a
// dev-<timestamp> fallback.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			Version, Commit = resolve(Version, Commit, info.Settings)
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// resolve fills whichever of version and commit is empty from the
// vcs.* build settings. Build info carries no tags, so a derived version is
// always dev-<commit date>.
func resolve(version, commit string, settings []debug.BuildSetting) (string, string) {
	vcs := make(map[string]string, 3)
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision", "vcs.modified", "vcs.time":
			vcs[s.Key] = s.Value
		}
	}

	if commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if vcs["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		}
	}

	return version, commit
}

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is sent with every backend request
func UserAgent() string {
	return fmt.Sprintf("feedbackhub/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
