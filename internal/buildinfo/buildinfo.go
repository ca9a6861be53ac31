// Package buildinfo carries version metadata stamped at link time, e.g.
//
//	go build -ldflags "-X bouncer/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"

	"go.uber.org/zap"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the -version output.
func String() string {
	return fmt.Sprintf("bouncer %s (commit %s, built %s)", Version, Commit, Date)
}

// Fields returns the build metadata as log fields.
func Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", Version),
		zap.String("commit", Commit),
		zap.String("date", Date),
	}
}
