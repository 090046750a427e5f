package primesieve

import "fmt"

// MajorVersion and MinorVersion identify this package's public API and
// wire-format (Digest) compatibility level. MinorVersion increases for
// additive, backward-compatible changes; MajorVersion increases when a
// caller relying on prior behavior (digest values, error types) could
// break.
const (
	MajorVersion = 1
	MinorVersion = 0
)

// Version is MajorVersion.MinorVersion as a dotted string, suitable for
// a CLI's -version flag or a log line identifying which build produced
// a given Digest.
func Version() string {
	return fmt.Sprintf("%d.%d", MajorVersion, MinorVersion)
}
