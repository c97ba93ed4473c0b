// Package greeter implements the program's single operation: print the
// greeting, the current time, the host build identifier, then wait for the
// user to press Enter.
//
// The Service runs against an injected platform provider and I/O streams;
// Run wires the real host and the process streams for the CLI.
package greeter
