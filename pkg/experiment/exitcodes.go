// Package experiment provides the shared plumbing of a glueball experiment
// binary: flag-driven configuration, the results directory, metadata
// recording and process exit codes.
package experiment

// Exit codes follow the BSD sysexits convention so shell wrappers can tell
// misuse apart from internal failures.
const (
	// ExUsage means the command was used incorrectly, e.g. unparsable flags
	// or an invalid configuration.
	ExUsage = 64
	// ExSoftware means an internal software error has been detected.
	ExSoftware = 70
	// ExIOErr means an error occurred while doing I/O on a file.
	ExIOErr = 74
)
