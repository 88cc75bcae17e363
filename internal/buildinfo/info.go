// Package buildinfo carries the release metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/skinledger/skinledger/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the metadata for --version and GET /v1/status.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
