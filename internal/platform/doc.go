// Package platform reads host facts for the greeter: the current time, the
// OS build identifier, and the identity of the user running the program.
//
// The version query is inherently non-portable; each supported OS has its
// own host_*.go file behind a build tag. Callers depend on the Provider
// interface so tests can substitute fakes for the real host.
package platform
