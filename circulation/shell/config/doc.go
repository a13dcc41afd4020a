// Package config loads the runtime settings of the circulation engine and sets up the
// OpenTelemetry providers.
//
// Settings come from defaults, then an optional YAML file, then CIRCULATION_* environment
// variables. Later sources win.
package config
