// Package version holds the build version, set with
// -ldflags "-X github.com/ayugram/ayu-settings/version.Version=1.2.3".
package version

var Version = "dev"
