// Package version exposes build metadata for the project.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. Note that
// BuildTime is the moment the binary was compiled; the greeter's "Built at"
// output line is the wall clock at run time and comes from elsewhere.
package version
