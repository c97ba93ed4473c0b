// Package config defines optional greeter settings and provides helpers to
// load, validate and save them in YAML format.
//
// Settings are entirely optional: a bare invocation consults no file and
// runs with compiled-in defaults, which reproduce the stock output exactly.
package config
