package version

import (
	"runtime/debug"
)

// Version information for lexmatch
const (
	// Version is the current semantic version
	Version = "0.1.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information including the Go toolchain
func FullInfo() string {
	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}
	return "lexmatch " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ", " + goVersion + ")"
}
