// Package buildinfo carries the release stamp set with -ldflags "-X".
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Name is the program name shown in window titles and the HUD.
const Name = "starfield"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, falling back to the commit and then the module
// version recorded by the Go toolchain.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

// Title is the one-line banner, e.g. "starfield v1.2.0".
func Title() string {
	return fmt.Sprintf("%s %s", Name, Short())
}

// Long adds the commit and build date when they were stamped.
func Long() string {
	s := Title()
	if Commit != "" && Commit != "unknown" {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s += " (" + Date + ")"
	}
	return s
}
