// Package volumes finds candidate batch directories on mounted volumes.
//
// Discovery probes a set of mount roots for a volume carrying an IMAGES
// directory (name configurable) and stops at the first match. On Linux a
// Watcher can additionally subscribe to udev netlink block-device events and
// re-probe when media is attached; other platforms get a stub that reports
// watching as unsupported.
package volumes
