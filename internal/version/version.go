// Package version provides build-time version information.
//
// Build with ldflags to set it:
//
//	go build -ldflags "-X github.com/luckman212/ytx/internal/version.Version=0.2.0 \
//	                   -X github.com/luckman212/ytx/internal/version.GitHash=$(git rev-parse --short=7 HEAD)"
package version

import "fmt"

var (
	// Version is the semantic version; overridden by ldflags in
	// release builds.
	Version = "0.2.0"
	// GitHash is the short git commit hash, "unknown" for a plain
	// `go build`.
	GitHash = "unknown"
)

// String returns "ytx <version> (<hash>)".
func String() string {
	return fmt.Sprintf("ytx %s (%s)", Version, GitHash)
}
