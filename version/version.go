// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/gridsnake/engine/version.Version=...".
package version

// Version is the version of the snake binaries.
var Version = "dev"
