// Package sysinfo contains core value types for the greeter output.
//
// It defines Version (the host build identifier), Actor (who is running the
// program) and Report (one fully resolved greeting ready for rendering).
package sysinfo
