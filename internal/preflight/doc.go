// Package preflight verifies batch preconditions before any file is written:
// destination directory access and free disk space.
package preflight
