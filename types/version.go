package types

import "runtime"

// Version information for the htmltokenizer library.
const (
	Version = "0.1.0"
	Name    = "htmltokenizer"
)

// BuildInfo contains version and build information for the htmltokenizer library.
type BuildInfo struct {
	Version   string
	Name      string
	GoVersion string
}

// GetBuildInfo returns the current version information, including the Go
// runtime the binary was built with.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
