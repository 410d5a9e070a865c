// Package preflight checks that the locations lrcmaker writes to are usable.
//
// The CLI "config validate" command runs RunAll after loading configuration
// and prints each Result. The export directory may be missing since exports
// create it on demand; every other location must already exist and be
// writable.
package preflight
