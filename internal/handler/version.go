package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables, set with -ldflags -X
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the application
// @Summary Version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   getVersionInfo(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// getVersionInfo prefers the build-time version, then $VERSION
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
