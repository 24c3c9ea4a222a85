// Package buildinfo holds version metadata stamped in by the build pipeline.
//
//	go build -ldflags "-X github.com/jarcd/hello-service/internal/buildinfo.Version=1.2.0 \
//	  -X github.com/jarcd/hello-service/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Values are overwritten at link time; the defaults identify a local build.
var (
	// Version is the release version reported by the health endpoint
	Version = "dev"
	// Commit is the short VCS revision the binary was built from
	Commit = "none"
	// Date is the build timestamp
	Date = "unknown"
)

// String renders the build metadata for the startup log line.
func String() string {
	return fmt.Sprintf("hello-service %s (commit=%s, date=%s)", Version, Commit, Date)
}
